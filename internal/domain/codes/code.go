package codes

import (
	"time"

	"gorm.io/gorm"
)

// Code is a single redeemable download code. The primary key is the code
// string itself, always stored uppercase. A MaxUses of 0 means unlimited.
type Code struct {
	ID string `gorm:"type:varchar(7);primaryKey" json:"id"`

	BatchID string `gorm:"type:uuid;not null;index" json:"batch_id"`
	Batch   *Batch `json:"batch,omitempty"`

	MaxUses   int `gorm:"not null;default:3" json:"max_uses"`
	TimesUsed int `gorm:"not null;default:0" json:"times_used"`

	LastUsedDate *time.Time `json:"last_used_date,omitempty"`

	CreatedBy *string `gorm:"type:uuid" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Code) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := Generate(tx.Session(&gorm.Session{NewDB: true}))
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}

// RemainingUses is meaningless when MaxUses is 0 (unlimited).
func (c *Code) RemainingUses() int {
	return c.MaxUses - c.TimesUsed
}

// RedeemURI is the public path at which this code can be redeemed.
func (c *Code) RedeemURI() string {
	return "/redeem/" + c.ID
}

func (c *Code) String() string {
	return c.ID
}

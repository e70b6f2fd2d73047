package codes

import (
	"time"

	"codedrop-app/internal/domain/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultNumberOfCodes = 100
	DefaultMaxUses       = 3
)

// Batch is a group of codes generated together for one work. NumberOfCodes
// is a write-once generation request: it is honored when the batch is
// created and never re-triggered on update.
type Batch struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`

	WorkID string        `gorm:"type:uuid;not null;index" json:"work_id"`
	Work   *catalog.Work `json:"work,omitempty"`

	// PrivateNote is for operator eyes only and must never appear in a
	// public response.
	PrivateNote string `json:"-"`

	PublicMessage         string `json:"public_message,omitempty"`
	PublicMessageRendered string `json:"public_message_rendered,omitempty"`

	NumberOfCodes int `gorm:"not null;default:100" json:"number_of_codes"`
	MaxUses       int `gorm:"not null;default:3" json:"max_uses"`

	CreatedBy *string `gorm:"type:uuid" json:"-"`

	Codes []Code `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE;" json:"codes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Batch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps the cached rendered message in sync with the markdown
// source on every create and update.
func (b *Batch) BeforeSave(tx *gorm.DB) error {
	rendered, err := RenderMessage(b.PublicMessage)
	if err != nil {
		return err
	}
	b.PublicMessageRendered = rendered
	return nil
}

func (b *Batch) String() string {
	if b.Work != nil && b.Work.Artist != nil {
		return b.Label + " -- " + b.Work.Title + " by " + b.Work.Artist.Name
	}
	return b.Label
}

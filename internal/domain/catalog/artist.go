package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null;index" json:"name"`
	URL  string `json:"url,omitempty"`

	CreatedBy *string `gorm:"type:uuid" json:"-"`

	Works []Work `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"works,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Artist) String() string {
	return a.Name
}

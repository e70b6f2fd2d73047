package catalog

import (
	"time"

	"codedrop-app/internal/domain/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Work is a downloadable asset unlocked by redeeming a code. Codes attached
// to an unpublished work never validate, whatever their own counters say.
type Work struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Title string `gorm:"not null;index" json:"title"`

	ArtistID string  `gorm:"type:uuid;not null;index" json:"artist_id"`
	Artist   *Artist `json:"artist,omitempty"`

	Published bool `gorm:"not null;default:true" json:"published"`

	ImageID *string      `gorm:"type:uuid" json:"image_id,omitempty"`
	Image   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"image,omitempty"`

	CreatedBy *string `gorm:"type:uuid" json:"-"`

	Files []File `gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;" json:"files,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Work) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (w *Work) String() string {
	return w.Title
}

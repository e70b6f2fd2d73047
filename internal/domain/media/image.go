package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Image struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalPath  string  `gorm:"not null" json:"original_path"`
	ThumbnailPath *string `json:"thumbnail_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

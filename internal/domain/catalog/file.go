package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is one downloadable payload attached to a work. Path is the key of
// the stored blob; Filename keeps the original basename for the
// Content-Disposition header; ContentType is sniffed from the bytes at
// upload time.
type File struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`

	WorkID string `gorm:"type:uuid;not null;index" json:"work_id"`
	Work   *Work  `json:"-"`

	Path        string `gorm:"not null" json:"-"`
	Filename    string `gorm:"not null" json:"filename"`
	Size        int64  `gorm:"not null" json:"size"`
	ContentType string `gorm:"not null" json:"content_type"`

	CreatedBy *string `gorm:"type:uuid" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func (f *File) String() string {
	return f.Filename
}

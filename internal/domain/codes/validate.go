package codes

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidCode is the distinguished "invalid" result: the code does not
// exist, its work is unpublished, or (strict check only) it has no uses
// left. Callers never learn which.
var ErrInvalidCode = errors.New("invalid code")

// Validate is the loose check used on the URL entry point: the code must
// exist (matched case-insensitively) and its batch's work must be
// published. Remaining uses are deliberately not checked here, so a code
// that runs out between page load and confirmation does not block a user
// already mid-flow.
func Validate(db *gorm.DB, codeString string) (*Code, error) {
	return validate(db, codeString, false)
}

// ValidateStrict additionally requires remaining uses. It is the gate for
// the manual-entry form, where nobody is mid-flow yet.
func ValidateStrict(db *gorm.DB, codeString string) (*Code, error) {
	return validate(db, codeString, true)
}

func validate(db *gorm.DB, codeString string, strict bool) (*Code, error) {
	q := publishedCodeQuery(db, codeString)
	if strict {
		q = q.Where("codes.max_uses = 0 OR codes.times_used < codes.max_uses")
	}

	var code Code
	err := q.Preload("Batch.Work.Artist").Preload("Batch.Work.Image").First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, fmt.Errorf("look up code: %w", err)
	}
	return &code, nil
}

func publishedCodeQuery(db *gorm.DB, codeString string) *gorm.DB {
	return db.Model(&Code{}).
		Joins("JOIN batches ON batches.id = codes.batch_id").
		Joins("JOIN works ON works.id = batches.work_id").
		Where("UPPER(codes.id) = ? AND works.published = ?", strings.ToUpper(codeString), true)
}

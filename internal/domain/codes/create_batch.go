package codes

import (
	"fmt"

	"gorm.io/gorm"
)

// CreateBatch persists a batch and generates its codes in one transaction.
// Exactly NumberOfCodes codes are created, each inheriting the batch's
// MaxUses. Either the batch and all of its codes exist afterwards, or
// nothing does.
func CreateBatch(db *gorm.DB, batch *Batch) error {
	if batch.NumberOfCodes < 0 {
		return fmt.Errorf("number_of_codes must not be negative")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return fmt.Errorf("create batch: %w", err)
		}
		for i := 0; i < batch.NumberOfCodes; i++ {
			code := Code{
				BatchID:   batch.ID,
				MaxUses:   batch.MaxUses,
				CreatedBy: batch.CreatedBy,
			}
			if err := tx.Create(&code).Error; err != nil {
				return fmt.Errorf("create code %d of %d: %w", i+1, batch.NumberOfCodes, err)
			}
		}
		return nil
	})
}

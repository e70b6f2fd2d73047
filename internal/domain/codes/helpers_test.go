package codes_test

import (
	"testing"

	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"

	"gorm.io/gorm"
)

func seedBatch(t *testing.T, db *gorm.DB, published bool, maxUses int) *codes.Batch {
	t.Helper()

	artist := catalog.Artist{Name: "Sharp Violet", URL: "https://sharpviolet.example"}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	work := catalog.Work{Title: "Night Sessions", ArtistID: artist.ID, Published: published}
	if err := db.Create(&work).Error; err != nil {
		t.Fatalf("seed work: %v", err)
	}
	batch := codes.Batch{Label: "tour merch", WorkID: work.ID, NumberOfCodes: 0, MaxUses: maxUses}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	return &batch
}

func seedCode(t *testing.T, db *gorm.DB, batch *codes.Batch, maxUses, timesUsed int) *codes.Code {
	t.Helper()

	code := codes.Code{BatchID: batch.ID, MaxUses: maxUses, TimesUsed: timesUsed}
	if err := db.Create(&code).Error; err != nil {
		t.Fatalf("seed code: %v", err)
	}
	return &code
}

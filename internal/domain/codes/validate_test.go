package codes_test

import (
	"errors"
	"strings"
	"testing"

	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/testdb"
)

func TestValidateFindsPublishedCodeCaseInsensitively(t *testing.T) {
	db := testdb.Open(t)
	batch := seedBatch(t, db, true, 3)
	code := seedCode(t, db, batch, 3, 0)

	got, err := codes.Validate(db, strings.ToLower(code.ID))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.ID != code.ID {
		t.Fatalf("Validate returned %q, want %q", got.ID, code.ID)
	}
	if got.Batch == nil || got.Batch.Work == nil || got.Batch.Work.Artist == nil {
		t.Fatal("Validate did not preload batch/work/artist chain")
	}
}

func TestValidateRejectsUnknownCode(t *testing.T) {
	db := testdb.Open(t)

	_, err := codes.Validate(db, "NOPE123")
	if !errors.Is(err, codes.ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestValidateRejectsUnpublishedWorkRegardlessOfUses(t *testing.T) {
	db := testdb.Open(t)
	batch := seedBatch(t, db, false, 3)
	code := seedCode(t, db, batch, 3, 0)

	if _, err := codes.Validate(db, code.ID); !errors.Is(err, codes.ErrInvalidCode) {
		t.Fatalf("loose err = %v, want ErrInvalidCode", err)
	}
	if _, err := codes.ValidateStrict(db, code.ID); !errors.Is(err, codes.ErrInvalidCode) {
		t.Fatalf("strict err = %v, want ErrInvalidCode", err)
	}
}

func TestLooseCheckIgnoresRemainingUsesStrictDoesNot(t *testing.T) {
	db := testdb.Open(t)
	batch := seedBatch(t, db, true, 1)
	spent := seedCode(t, db, batch, 1, 1)

	if _, err := codes.Validate(db, spent.ID); err != nil {
		t.Fatalf("loose check rejected spent code: %v", err)
	}
	if _, err := codes.ValidateStrict(db, spent.ID); !errors.Is(err, codes.ErrInvalidCode) {
		t.Fatalf("strict err = %v, want ErrInvalidCode", err)
	}
}

func TestStrictCheckTreatsZeroMaxUsesAsUnlimited(t *testing.T) {
	db := testdb.Open(t)
	batch := seedBatch(t, db, true, 0)
	code := seedCode(t, db, batch, 0, 9000)

	if _, err := codes.ValidateStrict(db, code.ID); err != nil {
		t.Fatalf("strict check rejected unlimited code: %v", err)
	}
}

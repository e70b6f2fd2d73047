package redemption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/domain/events"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the code does not resolve to a published work
	// anymore (unknown code, or unpublished between presentation and
	// confirmation).
	ErrNotFound = errors.New("code not found")
	// ErrExhausted means the conditional increment matched no row: the
	// last remaining use was consumed by a concurrent confirmation.
	ErrExhausted = errors.New("code exhausted")
)

// Redeemer executes the one mutating transition of the code lifecycle:
// confirmed redemption. It is the only writer of times_used and
// last_used_date. A redemption acknowledged to the user is irrevocable;
// there is no undo.
type Redeemer struct {
	DB     *gorm.DB
	Events *events.Dispatcher
}

// Redeem re-resolves the code against the published-work constraint,
// applies the use-count increment as a single conditional UPDATE guarded by
// "times_used < max_uses OR max_uses = 0", and returns the refreshed code.
// The guard closes the over-redemption race between concurrent
// confirmations: exactly one of them wins the final use.
func (r *Redeemer) Redeem(ctx context.Context, codeString string) (*codes.Code, error) {
	var redeemed *codes.Code

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := codes.Validate(tx, codeString)
		if errors.Is(err, codes.ErrInvalidCode) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&codes.Code{}).
			Where("id = ? AND (max_uses = 0 OR times_used < max_uses)", code.ID).
			Updates(map[string]any{
				"times_used":     gorm.Expr("times_used + 1"),
				"last_used_date": now,
			})
		if res.Error != nil {
			return fmt.Errorf("redeem code: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrExhausted
		}

		var fresh codes.Code
		if err := tx.Preload("Batch.Work.Artist").
			Preload("Batch.Work.Image").
			Preload("Batch.Work.Files").
			First(&fresh, "id = ?", code.ID).Error; err != nil {
			return fmt.Errorf("reload code: %w", err)
		}
		redeemed = &fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.Events.Publish(events.Event{
		Kind:      events.KindCodeRedeemed,
		SubjectID: redeemed.ID,
		Payload:   redeemed,
	})
	return redeemed, nil
}

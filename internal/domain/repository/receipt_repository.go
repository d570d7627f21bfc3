package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReceiptRepository issues receipt numbers from the per-day sequence.
type ReceiptRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction.
	// NextNumber must run inside the order-creation transaction so the number
	// is never burned on a rolled-back order.
	WithTx(tx *gorm.DB) ReceiptRepository

	// NextNumber locks the sequence row for the given date, increments it and
	// returns the formatted receipt number. Concurrent callers for the same
	// date serialize on the row lock; no two orders ever share a number.
	NextNumber(ctx context.Context, date time.Time) (string, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRepository defines the interface for the append-only payment ledger
type PaymentRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) PaymentRepository

	Create(ctx context.Context, payment *entity.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)
	// SumByOrder recomputes the paid total from scratch; callers never
	// increment paid_total in place
	SumByOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
	// SumCashByShift totals cash payments on orders tagged with the shift
	SumCashByShift(ctx context.Context, shiftID uuid.UUID) (decimal.Decimal, error)
}

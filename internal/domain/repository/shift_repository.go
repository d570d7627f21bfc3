package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"gorm.io/gorm"
)

// ShiftRepository defines the interface for cashier shift data access
type ShiftRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) ShiftRepository

	Create(ctx context.Context, shift *entity.CashierShift) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashierShift, error)
	// OpenForUser returns the user's currently open shift, or nil when the
	// drawer is closed. At most one open shift exists per user.
	OpenForUser(ctx context.Context, userID uuid.UUID) (*entity.CashierShift, error)
	Save(ctx context.Context, shift *entity.CashierShift) error
}

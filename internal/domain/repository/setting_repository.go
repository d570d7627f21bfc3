package repository

import (
	"context"

	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SettingRepository defines the interface for POS settings access
type SettingRepository interface {
	// GetOrCreatePos returns the POS settings row, creating it with the given
	// defaults when absent
	GetOrCreatePos(ctx context.Context, defaultTax, defaultService decimal.Decimal) (*entity.PosSetting, error)
	Save(ctx context.Context, setting *entity.PosSetting) error
}

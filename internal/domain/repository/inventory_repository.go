package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
)

// InventoryRepository defines the interface for stock levels and the
// append-only stock-movement ledger
type InventoryRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) InventoryRepository

	// GetOrCreateStock returns the stock row for the product, creating it
	// with zero stock and zero reorder level on first reference
	GetOrCreateStock(ctx context.Context, productID uuid.UUID) (*entity.InventoryStock, error)
	SaveStock(ctx context.Context, stock *entity.InventoryStock) error
	CreateMovement(ctx context.Context, movement *entity.StockMovement) error

	ListStocks(ctx context.Context, search string, params *pagination.PaginationParams) ([]entity.InventoryStock, int64, error)
	LowStock(ctx context.Context) ([]entity.InventoryStock, error)
	ListMovements(ctx context.Context, productID *uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error)
}

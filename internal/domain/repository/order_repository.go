package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
)

// OrderFilterParams represents the filtering options for listing orders
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.OrderStatus
	ReceiptNumber string
	TableID       *uuid.UUID
	Date          *time.Time
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) OrderRepository

	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// KitchenQueue returns confirmed/preparing/ready orders ordered by
	// confirmation time, optionally narrowed to one status
	KitchenQueue(ctx context.Context, status *enum.OrderStatus) ([]entity.Order, error)
	Save(ctx context.Context, order *entity.Order) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]interface{}) error
	// UpdateWhereStatus applies values only if the order still has the given
	// status and reports how many rows changed, making status transitions
	// race-safe under concurrent retries
	UpdateWhereStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, values map[string]interface{}) (int64, error)
	// ReplaceItems deletes all existing items for the order and inserts the
	// given batch; order edits never patch lines in place
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error
}

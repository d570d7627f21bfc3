package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
)

// TableRepository defines the interface for dining table data access
type TableRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) TableRepository

	Create(ctx context.Context, table *entity.DiningTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error)
	List(ctx context.Context, status *enum.TableStatus, params *pagination.PaginationParams) ([]entity.DiningTable, int64, error)
	ListAll(ctx context.Context, status *enum.TableStatus) ([]entity.DiningTable, error)
	Save(ctx context.Context, table *entity.DiningTable) error
	Delete(ctx context.Context, id uuid.UUID) error
}

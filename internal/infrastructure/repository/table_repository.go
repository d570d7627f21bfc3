package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) WithTx(tx *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: tx}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context, status *enum.TableStatus, params *pagination.PaginationParams) ([]entity.DiningTable, int64, error) {
	var tables []entity.DiningTable
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DiningTable{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("name ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&tables).Error

	return tables, total, err
}

func (r *tableRepository) ListAll(ctx context.Context, status *enum.TableStatus) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	query := r.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("name ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Save(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DiningTable{}, "id = ?", id).Error
}

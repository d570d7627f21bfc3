package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) GetOrCreateStock(ctx context.Context, productID uuid.UUID) (*entity.InventoryStock, error) {
	var stock entity.InventoryStock
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stock = entity.InventoryStock{ProductID: productID}
		if err := r.db.WithContext(ctx).Create(&stock).Error; err != nil {
			return nil, err
		}
		return &stock, nil
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *inventoryRepository) SaveStock(ctx context.Context, stock *entity.InventoryStock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *inventoryRepository) CreateMovement(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *inventoryRepository) ListStocks(ctx context.Context, search string, params *pagination.PaginationParams) ([]entity.InventoryStock, int64, error) {
	var stocks []entity.InventoryStock
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryStock{}).
		Joins("JOIN products ON products.id = inventory_stocks.product_id")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("products.name ILIKE ? OR products.sku ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Product").
		Order("products.name ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&stocks).Error

	return stocks, total, err
}

func (r *inventoryRepository) LowStock(ctx context.Context) ([]entity.InventoryStock, error) {
	var stocks []entity.InventoryStock
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("current_stock <= reorder_level").
		Find(&stocks).Error
	return stocks, err
}

func (r *inventoryRepository) ListMovements(ctx context.Context, productID *uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&movements).Error

	return movements, total, err
}

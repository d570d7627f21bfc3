package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"github.com/linato/linato-pos/pkg/pagination"
	"gorm.io/gorm"
)

// InventoryService handles stock levels and the movement ledger
type InventoryService struct {
	db          *gorm.DB
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *gorm.DB, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{
		db:          db,
		invRepo:     invRepo,
		productRepo: productRepo,
	}
}

// AdjustInput represents a manual stock adjustment
type AdjustInput struct {
	ProductID uuid.UUID
	Type      enum.MovementType
	Quantity  int
	Notes     *string
}

// Adjust applies a manual restock or adjustment: the stock row is locked,
// the delta applied, and a movement appended with before/after snapshots,
// all in one transaction. Sale movements cannot be created here.
func (s *InventoryService) Adjust(ctx context.Context, userID uuid.UUID, input *AdjustInput) (*entity.StockMovement, error) {
	if !input.Type.IsManual() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "type", Message: "Type must be restock or adjustment"},
		})
	}
	if input.Quantity == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity cannot be zero"},
		})
	}
	if input.Type == enum.MovementTypeRestock && input.Quantity < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Restock quantity must be positive"},
		})
	}

	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, err
	}

	var movement *entity.StockMovement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txInv := s.invRepo.WithTx(tx)
		stock, err := txInv.GetOrCreateStock(ctx, input.ProductID)
		if err != nil {
			return err
		}

		before := stock.CurrentStock
		stock.CurrentStock = before + input.Quantity
		if err := txInv.SaveStock(ctx, stock); err != nil {
			return err
		}

		movement = &entity.StockMovement{
			ProductID:     input.ProductID,
			Type:          input.Type,
			Quantity:      input.Quantity,
			BeforeStock:   before,
			AfterStock:    stock.CurrentStock,
			ReferenceType: enum.ReferenceTypeManual,
			UserID:        userID,
			Notes:         input.Notes,
		}
		return txInv.CreateMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// SetStockInput represents a direct stock override
type SetStockInput struct {
	ProductID    uuid.UUID
	CurrentStock int
	ReorderLevel *int
	Notes        *string
}

// SetStock overrides the on-hand count directly. The delta between old and
// new is still recorded as an adjustment movement so the ledger keeps
// reconstructing the current stock.
func (s *InventoryService) SetStock(ctx context.Context, userID uuid.UUID, input *SetStockInput) (*entity.InventoryStock, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, err
	}

	var stock *entity.InventoryStock
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txInv := s.invRepo.WithTx(tx)
		var err error
		stock, err = txInv.GetOrCreateStock(ctx, input.ProductID)
		if err != nil {
			return err
		}

		before := stock.CurrentStock
		stock.CurrentStock = input.CurrentStock
		if input.ReorderLevel != nil {
			stock.ReorderLevel = *input.ReorderLevel
		}
		if err := txInv.SaveStock(ctx, stock); err != nil {
			return err
		}

		if delta := input.CurrentStock - before; delta != 0 {
			return txInv.CreateMovement(ctx, &entity.StockMovement{
				ProductID:     input.ProductID,
				Type:          enum.MovementTypeAdjustment,
				Quantity:      delta,
				BeforeStock:   before,
				AfterStock:    input.CurrentStock,
				ReferenceType: enum.ReferenceTypeManual,
				UserID:        userID,
				Notes:         input.Notes,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// ListStocks returns stock rows with their products, optionally filtered by
// product name or SKU
func (s *InventoryService) ListStocks(ctx context.Context, search string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InventoryStock], error) {
	stocks, total, err := s.invRepo.ListStocks(ctx, search, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(stocks, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// LowStock returns products at or below their reorder level
func (s *InventoryService) LowStock(ctx context.Context) ([]entity.InventoryStock, error) {
	return s.invRepo.LowStock(ctx)
}

// ListMovements returns the movement ledger, optionally for one product
func (s *InventoryService) ListMovements(ctx context.Context, productID *uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	movements, total, err := s.invRepo.ListMovements(ctx, productID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(movements, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"github.com/linato/linato-pos/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService handles menu product management
type ProductService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, inventoryRepo repository.InventoryRepository) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
	}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	CategoryID uuid.UUID
	Name       string
	SKU        string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	ImagePath  *string
	IsActive   *bool
}

func (s *ProductService) validate(ctx context.Context, input *ProductInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.SKU == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sku", Message: "SKU is required"})
	}
	if input.Price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if input.Cost.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cost", Message: "Cost cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Category")
		}
		return err
	}
	return nil
}

// Create adds a product to the menu
func (s *ProductService) Create(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		SKU:        input.SKU,
		Price:      input.Price.Round(2),
		Cost:       input.Cost.Round(2),
		ImagePath:  input.ImagePath,
		IsActive:   true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	// seed the stock row so the product shows up in inventory immediately
	if _, err := s.inventoryRepo.GetOrCreateStock(ctx, product.ID); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// Get returns one product with its category and stock
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, err
	}
	return product, nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// Update edits a product. Existing order items keep their snapshots.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.SKU = input.SKU
	product.Price = input.Price.Round(2)
	product.Cost = input.Cost.Round(2)
	product.ImagePath = input.ImagePath
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, id)
}

// Delete soft-deletes a product. Historic order items are unaffected since
// they carry their own snapshots.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

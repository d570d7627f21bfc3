package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"gorm.io/gorm"
)

// CategoryService handles menu category management
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput represents the create/update category input
type CategoryInput struct {
	Name      string
	SortOrder int
}

// Create adds a menu category
func (s *CategoryService) Create(ctx context.Context, input *CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	category := &entity.Category{
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories in display order
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Update edits a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	category.Name = input.Name
	category.SortOrder = input.SortOrder
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryService) get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Category")
		}
		return nil, err
	}
	return category, nil
}

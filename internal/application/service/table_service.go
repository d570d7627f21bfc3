package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"gorm.io/gorm"
)

// TableService handles dining table management. Occupancy is driven by the
// order lifecycle; this service only manages the floor layout.
type TableService struct {
	tableRepo repository.TableRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// TableInput represents the create/update table input
type TableInput struct {
	Name     string
	Capacity int
}

func validateTableInput(input *TableInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Capacity < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "capacity", Message: "Capacity must be at least 1"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create adds a table to the floor, available by default
func (s *TableService) Create(ctx context.Context, input *TableInput) (*entity.DiningTable, error) {
	if err := validateTableInput(input); err != nil {
		return nil, err
	}

	table := &entity.DiningTable{
		Name:     input.Name,
		Capacity: input.Capacity,
		Status:   enum.TableStatusAvailable,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// List returns all tables, optionally filtered by status
func (s *TableService) List(ctx context.Context, status *enum.TableStatus) ([]entity.DiningTable, error) {
	return s.tableRepo.ListAll(ctx, status)
}

// Update edits a table's name and capacity. Status is not editable here.
func (s *TableService) Update(ctx context.Context, id uuid.UUID, input *TableInput) (*entity.DiningTable, error) {
	table, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTableInput(input); err != nil {
		return nil, err
	}

	table.Name = input.Name
	table.Capacity = input.Capacity
	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Delete removes a table from the floor. Occupied tables cannot be removed.
func (s *TableService) Delete(ctx context.Context, id uuid.UUID) error {
	table, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if table.Status == enum.TableStatusOccupied {
		return apperror.NewPreconditionError("Occupied tables cannot be deleted")
	}
	return s.tableRepo.Delete(ctx, id)
}

func (s *TableService) get(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Table")
		}
		return nil, err
	}
	return table, nil
}

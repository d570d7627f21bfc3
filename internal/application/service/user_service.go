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
	"github.com/linato/linato-pos/pkg/utils"
	"gorm.io/gorm"
)

// UserService handles staff account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     enum.Role
	Pin      *string
}

// Create adds a staff account. A PIN may only be set on admins; it
// authorizes voids at the POS.
func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Email == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Email is required"})
	}
	if len(input.Password) < 8 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if !input.Role.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "Invalid role"})
	}
	if input.Pin != nil && input.Role != enum.RoleAdmin {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "pin", Message: "Only admins can have a PIN"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperror.NewConflictError("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}
	if input.Pin != nil {
		pinHash, err := utils.HashPassword(*input.Pin)
		if err != nil {
			return nil, err
		}
		user.PinHash = &pinHash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns staff accounts, optionally filtered by role
func (s *UserService) List(ctx context.Context, role *enum.Role, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, role, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(users, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Get returns one user by id
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the update user input; nil fields are left as-is
type UpdateUserInput struct {
	Name     *string
	Role     *enum.Role
	IsActive *bool
	Pin      *string
}

// Update edits a staff account
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "role", Message: "Invalid role"},
			})
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Pin != nil {
		if user.Role != enum.RoleAdmin {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "pin", Message: "Only admins can have a PIN"},
			})
		}
		pinHash, err := utils.HashPassword(*input.Pin)
		if err != nil {
			return nil, err
		}
		user.PinHash = &pinHash
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPin replaces an admin's void-authorization PIN
func (s *UserService) SetPin(ctx context.Context, id uuid.UUID, pin string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != enum.RoleAdmin {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "pin", Message: "Only admins can have a PIN"},
		})
	}

	pinHash, err := utils.HashPassword(pin)
	if err != nil {
		return err
	}
	user.PinHash = &pinHash
	return s.userRepo.Save(ctx, user)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/pkg/pagination"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, role *enum.Role, params *pagination.PaginationParams) ([]entity.User, int64, error)
	// ActiveByRole returns active users holding the role; cancel authorization
	// checks the candidate PIN against every active admin's hash
	ActiveByRole(ctx context.Context, role enum.Role) ([]entity.User, error)
	Save(ctx context.Context, user *entity.User) error
}

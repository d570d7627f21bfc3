package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) WithTx(tx *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: tx}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.CashierShift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashierShift, error) {
	var shift entity.CashierShift
	err := r.db.WithContext(ctx).Preload("User").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) OpenForUser(ctx context.Context, userID uuid.UUID) (*entity.CashierShift, error) {
	var shift entity.CashierShift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND closed_at IS NULL", userID).
		Order("opened_at DESC").
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) Save(ctx context.Context, shift *entity.CashierShift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

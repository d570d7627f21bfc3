package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShiftService handles cash-drawer sessions and their reconciliation
type ShiftService struct {
	db          *gorm.DB
	shiftRepo   repository.ShiftRepository
	paymentRepo repository.PaymentRepository
}

// NewShiftService creates a new shift service
func NewShiftService(db *gorm.DB, shiftRepo repository.ShiftRepository, paymentRepo repository.PaymentRepository) *ShiftService {
	return &ShiftService{
		db:          db,
		shiftRepo:   shiftRepo,
		paymentRepo: paymentRepo,
	}
}

// Open starts a new drawer session for the user. A user can have at most one
// open shift at a time.
func (s *ShiftService) Open(ctx context.Context, userID uuid.UUID, openingCash decimal.Decimal) (*entity.CashierShift, error) {
	if openingCash.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "opening_cash", Message: "Opening cash cannot be negative"},
		})
	}

	open, err := s.shiftRepo.OpenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperror.NewConflictError("A shift is already open")
	}

	shift := &entity.CashierShift{
		UserID:      userID,
		OpenedAt:    time.Now(),
		OpeningCash: openingCash.Round(2),
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Current returns the user's open shift, or a not-found error when the
// drawer is closed
func (s *ShiftService) Current(ctx context.Context, userID uuid.UUID) (*entity.CashierShift, error) {
	shift, err := s.shiftRepo.OpenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Open shift")
	}
	return shift, nil
}

// CloseInput represents the close shift input
type CloseInput struct {
	ClosingCash decimal.Decimal
	Notes       *string
}

// Close reconciles and ends the shift. Expected cash is opening cash plus
// cash payments received on orders tagged with the shift; discrepancy is
// counted minus expected. Orders from the shift that are still open stay
// tagged and settle normally afterwards.
func (s *ShiftService) Close(ctx context.Context, userID uuid.UUID, input *CloseInput) (*entity.CashierShift, error) {
	if input.ClosingCash.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "closing_cash", Message: "Closing cash cannot be negative"},
		})
	}

	shift, err := s.shiftRepo.OpenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewPreconditionError("No open shift to close")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cashSales, err := s.paymentRepo.WithTx(tx).SumCashByShift(ctx, shift.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		shift.ClosedAt = &now
		shift.ClosingCash = input.ClosingCash.Round(2)
		shift.ExpectedCash = shift.OpeningCash.Add(cashSales).Round(2)
		shift.Discrepancy = shift.ClosingCash.Sub(shift.ExpectedCash).Round(2)
		shift.Notes = input.Notes
		return s.shiftRepo.WithTx(tx).Save(ctx, shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// Get returns one shift by id
func (s *ShiftService) Get(ctx context.Context, id uuid.UUID) (*entity.CashierShift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Shift")
		}
		return nil, err
	}
	return shift, nil
}

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

// ReportService serves the read-side sales rollups
type ReportService struct {
	reportRepo  repository.ReportRepository
	shiftRepo   repository.ShiftRepository
	paymentRepo repository.PaymentRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, shiftRepo repository.ShiftRepository, paymentRepo repository.PaymentRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		shiftRepo:   shiftRepo,
		paymentRepo: paymentRepo,
	}
}

// DailySummary returns the one-day sales rollup
func (s *ReportService) DailySummary(ctx context.Context, date time.Time) (*repository.DailySummary, error) {
	return s.reportRepo.DailySummary(ctx, date)
}

// SalesByProduct returns the day's sales grouped by product
func (s *ReportService) SalesByProduct(ctx context.Context, date time.Time) ([]repository.ProductSales, error) {
	return s.reportRepo.SalesByProduct(ctx, date)
}

// SalesByCategory returns the day's sales grouped by category
func (s *ReportService) SalesByCategory(ctx context.Context, date time.Time) ([]repository.CategorySales, error) {
	return s.reportRepo.SalesByCategory(ctx, date)
}

// ShiftReport is the cash reconciliation snapshot for one drawer session
type ShiftReport struct {
	ShiftID      uuid.UUID       `json:"shift_id"`
	UserID       uuid.UUID       `json:"user_id"`
	OpenedAt     time.Time       `json:"opened_at"`
	ClosedAt     *time.Time      `json:"closed_at,omitempty"`
	OpeningCash  decimal.Decimal `json:"opening_cash"`
	ClosingCash  decimal.Decimal `json:"closing_cash"`
	CashSales    decimal.Decimal `json:"cash_sales"`
	ExpectedCash decimal.Decimal `json:"expected_cash"`
	Discrepancy  decimal.Decimal `json:"discrepancy"`
}

// Shift reconciles one shift against its cash payments. With no shiftID the
// caller's open shift is reported. Expected cash and discrepancy are computed
// live so the report is usable while the drawer is still open.
func (s *ReportService) Shift(ctx context.Context, userID uuid.UUID, shiftID *uuid.UUID) (*ShiftReport, error) {
	var shift *entity.CashierShift
	if shiftID != nil {
		sh, err := s.shiftRepo.GetByID(ctx, *shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NewNotFoundError("Shift")
			}
			return nil, err
		}
		shift = sh
	} else {
		sh, err := s.shiftRepo.OpenForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if sh == nil {
			return nil, apperror.NewNotFoundError("Open shift")
		}
		shift = sh
	}

	cash, err := s.paymentRepo.SumCashByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}

	expected := shift.OpeningCash.Add(cash)
	return &ShiftReport{
		ShiftID:      shift.ID,
		UserID:       shift.UserID,
		OpenedAt:     shift.OpenedAt,
		ClosedAt:     shift.ClosedAt,
		OpeningCash:  shift.OpeningCash,
		ClosingCash:  shift.ClosingCash,
		CashSales:    cash,
		ExpectedCash: expected,
		Discrepancy:  shift.ClosingCash.Sub(expected),
	}, nil
}

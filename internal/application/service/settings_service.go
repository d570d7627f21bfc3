package service

import (
	"context"

	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SettingsService handles the store-wide POS defaults
type SettingsService struct {
	settingRepo repository.SettingRepository
	defaultTax  decimal.Decimal
	defaultSvc  decimal.Decimal
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingRepo repository.SettingRepository, defaultTax, defaultSvc decimal.Decimal) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		defaultTax:  defaultTax,
		defaultSvc:  defaultSvc,
	}
}

// Get returns the POS settings, creating the row with defaults when absent
func (s *SettingsService) Get(ctx context.Context) (*entity.PosSetting, error) {
	return s.settingRepo.GetOrCreatePos(ctx, s.defaultTax, s.defaultSvc)
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	TaxRate           decimal.Decimal
	ServiceChargeRate decimal.Decimal
}

// Update changes the default rates applied to new orders. Existing orders
// keep the rates they were created with.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.PosSetting, error) {
	hundred := decimal.NewFromInt(100)
	var fieldErrors []apperror.FieldError
	if input.TaxRate.IsNegative() || input.TaxRate.GreaterThan(hundred) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_rate", Message: "Tax rate must be between 0 and 100"})
	}
	if input.ServiceChargeRate.IsNegative() || input.ServiceChargeRate.GreaterThan(hundred) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "service_charge_rate", Message: "Service charge rate must be between 0 and 100"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	setting, err := s.settingRepo.GetOrCreatePos(ctx, s.defaultTax, s.defaultSvc)
	if err != nil {
		return nil, err
	}

	setting.TaxRate = input.TaxRate.Round(2)
	setting.ServiceChargeRate = input.ServiceChargeRate.Round(2)
	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

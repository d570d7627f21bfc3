package request

import "github.com/shopspring/decimal"

// UpdateSettingsRequest represents a POS settings update request
type UpdateSettingsRequest struct {
	TaxRate           decimal.Decimal `json:"tax_rate"`
	ServiceChargeRate decimal.Decimal `json:"service_charge_rate"`
}

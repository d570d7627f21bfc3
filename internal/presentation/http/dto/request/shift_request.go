package request

import "github.com/shopspring/decimal"

// OpenShiftRequest represents a shift open request
type OpenShiftRequest struct {
	OpeningCash decimal.Decimal `json:"opening_cash"`
}

// CloseShiftRequest represents a shift close request
type CloseShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash"`
	Notes       *string         `json:"notes" binding:"omitempty,max=255"`
}

package request

import "github.com/google/uuid"

// AdjustStockRequest represents a manual stock adjustment request
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Notes     *string   `json:"notes" binding:"omitempty,max=255"`
}

// SetStockRequest represents a direct stock override request
type SetStockRequest struct {
	CurrentStock int     `json:"current_stock"`
	ReorderLevel *int    `json:"reorder_level" binding:"omitempty,min=0"`
	Notes        *string `json:"notes" binding:"omitempty,max=255"`
}

// MovementFilterRequest represents movement ledger filter parameters
type MovementFilterRequest struct {
	ProductID string `form:"product_id"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

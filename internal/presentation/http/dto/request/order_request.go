package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest represents one cart line in an order request
type OrderItemRequest struct {
	ProductID      uuid.UUID       `json:"product_id" binding:"required"`
	Qty            int             `json:"qty" binding:"required,min=1"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Notes          *string         `json:"notes" binding:"omitempty,max=200"`
}

// CreateOrderRequest represents an order creation or edit request
type CreateOrderRequest struct {
	DineType          string             `json:"dine_type" binding:"required"`
	TableID           *uuid.UUID         `json:"table_id"`
	CustomerName      *string            `json:"customer_name" binding:"omitempty,max=120"`
	Phone             *string            `json:"phone" binding:"omitempty,max=30"`
	Address           *string            `json:"address"`
	Items             []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountAmount    decimal.Decimal    `json:"discount_amount"`
	ServiceChargeRate *decimal.Decimal   `json:"service_charge_rate"`
	TaxRate           *decimal.Decimal   `json:"tax_rate"`
	Rounding          decimal.Decimal    `json:"rounding"`
	Hold              bool               `json:"hold"`
}

// UpdateOrderStatusRequest represents a status progression request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CancelOrderRequest represents an order cancellation request
type CancelOrderRequest struct {
	Reason   string `json:"reason" binding:"omitempty,max=255"`
	AdminPin string `json:"admin_pin" binding:"required"`
}

// AddPaymentRequest represents a payment request against an order
type AddPaymentRequest struct {
	Method      string          `json:"method" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ReferenceNo *string         `json:"reference_no" binding:"omitempty,max=120"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status        string `form:"status"`
	ReceiptNumber string `form:"receipt_number"`
	TableID       string `form:"table_id"`
	Date          string `form:"date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

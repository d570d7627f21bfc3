package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=120"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
	Name       string          `json:"name" binding:"required,min=1,max=160"`
	SKU        string          `json:"sku" binding:"required,min=1,max=80"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Cost       decimal.Decimal `json:"cost"`
	ImagePath  *string         `json:"image_path" binding:"omitempty,max=255"`
	IsActive   *bool           `json:"is_active"`
}

// ProductFilterRequest represents product list filter parameters
type ProductFilterRequest struct {
	CategoryID string `form:"category_id"`
	IsActive   string `form:"is_active"`
	Search     string `form:"search"`
	All        bool   `form:"all"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

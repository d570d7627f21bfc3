package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySummary is the one-day sales rollup. Cancelled orders are excluded.
type DailySummary struct {
	Date          string          `json:"date"`
	OrderCount    int64           `json:"order_count"`
	GrossSales    decimal.Decimal `json:"gross_sales"`
	Discounts     decimal.Decimal `json:"discounts"`
	Tax           decimal.Decimal `json:"tax"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	NetSales      decimal.Decimal `json:"net_sales"`
}

// ProductSales is one row of the sales-by-product rollup
type ProductSales struct {
	ProductID    uuid.UUID       `json:"product_id"`
	NameSnapshot string          `json:"name_snapshot"`
	TotalQty     int64           `json:"total_qty"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

// CategorySales is one row of the sales-by-category rollup
type CategorySales struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	TotalQty   int64           `json:"total_qty"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ReportRepository defines the read-side aggregation queries
type ReportRepository interface {
	DailySummary(ctx context.Context, date time.Time) (*DailySummary, error)
	SalesByProduct(ctx context.Context, date time.Time) ([]ProductSales, error)
	SalesByCategory(ctx context.Context, date time.Time) ([]CategorySales, error)
}

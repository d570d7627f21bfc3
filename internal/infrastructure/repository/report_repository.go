package repository

import (
	"context"
	"time"

	"github.com/linato/linato-pos/internal/domain/enum"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day, day.AddDate(0, 0, 1)
}

func (r *reportRepository) DailySummary(ctx context.Context, date time.Time) (*domainRepo.DailySummary, error) {
	from, to := dayBounds(date)

	var summary domainRepo.DailySummary
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`COUNT(*) AS order_count,
			COALESCE(SUM(subtotal), 0) AS gross_sales,
			COALESCE(SUM(discount_amount), 0) AS discounts,
			COALESCE(SUM(tax_amount), 0) AS tax,
			COALESCE(SUM(service_charge_amount), 0) AS service_charge,
			COALESCE(SUM(total), 0) AS net_sales`).
		Where("created_at >= ? AND created_at < ? AND status <> ?", from, to, enum.OrderStatusCancelled).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	summary.Date = from.Format("2006-01-02")
	return &summary, nil
}

func (r *reportRepository) SalesByProduct(ctx context.Context, date time.Time) ([]domainRepo.ProductSales, error) {
	from, to := dayBounds(date)

	var rows []domainRepo.ProductSales
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`order_items.product_id,
			order_items.name_snapshot,
			COALESCE(SUM(order_items.qty), 0) AS total_qty,
			COALESCE(SUM(order_items.line_total), 0) AS total_sales`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?", from, to, enum.OrderStatusCancelled).
		Group("order_items.product_id, order_items.name_snapshot").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) SalesByCategory(ctx context.Context, date time.Time) ([]domainRepo.CategorySales, error) {
	from, to := dayBounds(date)

	var rows []domainRepo.CategorySales
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`products.category_id,
			categories.name,
			COALESCE(SUM(order_items.qty), 0) AS total_qty,
			COALESCE(SUM(order_items.line_total), 0) AS total_sales`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?", from, to, enum.OrderStatusCancelled).
		Group("products.category_id, categories.name").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestCreateProductSeedsStockRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category := entity.Category{Name: "Drinks " + uuid.NewString()[:8]}
	if err := env.db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	product, err := env.products.Create(ctx, &ProductInput{
		CategoryID: category.ID,
		Name:       "Calamansi Juice",
		SKU:        uuid.NewString()[:12],
		Price:      decimal.NewFromInt(60),
		Cost:       decimal.NewFromInt(20),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	stock := env.stockOf(t, product.ID)
	if stock.CurrentStock != 0 {
		t.Errorf("seeded stock = %d, want 0", stock.CurrentStock)
	}

	// unknown category is rejected
	if _, err := env.products.Create(ctx, &ProductInput{
		CategoryID: uuid.New(),
		Name:       "Orphan",
		SKU:        uuid.NewString()[:12],
		Price:      decimal.NewFromInt(10),
	}); err == nil {
		t.Error("create with unknown category succeeded, want error")
	}
}

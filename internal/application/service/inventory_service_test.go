package service

import (
	"context"
	"testing"

	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestAdjustAppendsLedgerEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Rice", decimal.NewFromInt(40), 20)

	movement, err := env.inventory.Adjust(ctx, env.admin.ID, &AdjustInput{
		ProductID: p.ID,
		Type:      enum.MovementTypeRestock,
		Quantity:  30,
	})
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if movement.BeforeStock != 20 || movement.AfterStock != 50 {
		t.Errorf("restock snapshots = %d/%d, want 20/50", movement.BeforeStock, movement.AfterStock)
	}

	movement, err = env.inventory.Adjust(ctx, env.admin.ID, &AdjustInput{
		ProductID: p.ID,
		Type:      enum.MovementTypeAdjustment,
		Quantity:  -5,
	})
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if movement.BeforeStock != 50 || movement.AfterStock != 45 {
		t.Errorf("adjust snapshots = %d/%d, want 50/45", movement.BeforeStock, movement.AfterStock)
	}

	if got := env.stockOf(t, p.ID).CurrentStock; got != 45 {
		t.Errorf("stock = %d, want 45", got)
	}

	// sale movements only come from confirmed orders
	if _, err := env.inventory.Adjust(ctx, env.admin.ID, &AdjustInput{
		ProductID: p.ID,
		Type:      enum.MovementTypeSale,
		Quantity:  -1,
	}); err == nil {
		t.Error("manual sale movement succeeded, want error")
	}
	// negative restock makes no sense
	if _, err := env.inventory.Adjust(ctx, env.admin.ID, &AdjustInput{
		ProductID: p.ID,
		Type:      enum.MovementTypeRestock,
		Quantity:  -1,
	}); err == nil {
		t.Error("negative restock succeeded, want error")
	}
}

func TestSetStockRecordsDelta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Flour", decimal.NewFromInt(60), 10)

	stock, err := env.inventory.SetStock(ctx, env.admin.ID, &SetStockInput{
		ProductID:    p.ID,
		CurrentStock: 25,
	})
	if err != nil {
		t.Fatalf("set stock: %v", err)
	}
	if stock.CurrentStock != 25 {
		t.Errorf("stock = %d, want 25", stock.CurrentStock)
	}

	var movements []entity.StockMovement
	if err := env.db.Where("product_id = ?", p.ID).Find(&movements).Error; err != nil {
		t.Fatalf("load movements: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("movements = %d, want 1", len(movements))
	}
	m := movements[0]
	if m.Type != enum.MovementTypeAdjustment || m.Quantity != 15 || m.BeforeStock != 10 || m.AfterStock != 25 {
		t.Errorf("override movement wrong: %+v", m)
	}

	// setting the same value appends nothing
	if _, err := env.inventory.SetStock(ctx, env.admin.ID, &SetStockInput{
		ProductID:    p.ID,
		CurrentStock: 25,
	}); err != nil {
		t.Fatalf("idempotent set: %v", err)
	}
	var count int64
	if err := env.db.Model(&entity.StockMovement{}).Where("product_id = ?", p.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("movements = %d after no-op set, want 1", count)
	}
}

func TestStockMayGoNegative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Ice", decimal.NewFromInt(10), 1)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 5}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)

	if got := env.stockOf(t, p.ID).CurrentStock; got != -4 {
		t.Errorf("stock = %d, want -4 (no floor on confirm)", got)
	}
}

func TestLowStockThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Sugar", decimal.NewFromInt(30), 3)
	if _, err := env.inventory.SetStock(ctx, env.admin.ID, &SetStockInput{
		ProductID:    p.ID,
		CurrentStock: 3,
		ReorderLevel: intPtr(5),
	}); err != nil {
		t.Fatalf("set reorder level: %v", err)
	}

	low, err := env.inventory.LowStock(ctx)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	found := false
	for _, s := range low {
		if s.ProductID == p.ID {
			found = true
		}
	}
	if !found {
		t.Error("product at reorder level missing from low-stock list")
	}
}

func intPtr(n int) *int {
	return &n
}

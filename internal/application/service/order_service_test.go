package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func dineInOrder(table *entity.DiningTable, items ...OrderItemInput) *CreateOrderInput {
	input := &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    items,
	}
	if table != nil {
		input.DineType = enum.DineTypeDineIn
		input.TableID = &table.ID
	}
	return input
}

func TestCreateOrderAssignsReceiptAndTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sisig := env.seedProduct(t, "Sisig", decimal.NewFromInt(280), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(nil, OrderItemInput{ProductID: sisig.ID, Qty: 2}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !strings.HasPrefix(order.ReceiptNumber, "LIN-") {
		t.Errorf("receipt number = %q, want LIN- prefix", order.ReceiptNumber)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(560)) {
		t.Errorf("subtotal = %s, want 560", order.Subtotal)
	}
	// 12% store default tax on 560
	if !order.TaxAmount.Equal(decimal.RequireFromString("67.20")) {
		t.Errorf("tax = %s, want 67.20", order.TaxAmount)
	}
	if !order.Total.Equal(decimal.RequireFromString("627.20")) {
		t.Errorf("total = %s, want 627.20", order.Total)
	}
	if !order.Balance.Equal(order.Total) {
		t.Errorf("balance = %s, want %s", order.Balance, order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].NameSnapshot != "Sisig" {
		t.Errorf("items not snapshotted: %+v", order.Items)
	}
}

func TestReceiptNumbersAreSequentialPerDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Lumpia", decimal.NewFromInt(120), 100)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		order, err := env.orders.Create(ctx, env.cashier.ID, nil,
			dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 1}))
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		if seen[order.ReceiptNumber] {
			t.Fatalf("duplicate receipt number %s", order.ReceiptNumber)
		}
		seen[order.ReceiptNumber] = true
	}
}

func TestConfirmDeductsStockAndOccupiesTable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	adobo := env.seedProduct(t, "Adobo", decimal.NewFromInt(250), 10)
	halo := env.seedProduct(t, "Halo-Halo", decimal.NewFromInt(150), 5)
	table := env.seedTable(t, "T1")

	order, err := env.orders.Create(ctx, env.cashier.ID, nil, dineInOrder(&table,
		OrderItemInput{ProductID: adobo.ID, Qty: 3},
		OrderItemInput{ProductID: halo.ID, Qty: 1},
	))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed := mustConfirm(t, env, order.ID)
	if confirmed.Status != enum.OrderStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", confirmed.Status)
	}
	if confirmed.ConfirmedAt == nil {
		t.Error("confirmed_at not set")
	}

	if got := env.stockOf(t, adobo.ID).CurrentStock; got != 7 {
		t.Errorf("adobo stock = %d, want 7", got)
	}
	if got := env.stockOf(t, halo.ID).CurrentStock; got != 4 {
		t.Errorf("halo-halo stock = %d, want 4", got)
	}

	var movements []entity.StockMovement
	if err := env.db.Where("reference_id = ?", order.ID).Order("created_at ASC").Find(&movements).Error; err != nil {
		t.Fatalf("load movements: %v", err)
	}
	if len(movements) != 2 {
		t.Fatalf("movements = %d, want 2", len(movements))
	}
	for _, m := range movements {
		if m.Type != enum.MovementTypeSale {
			t.Errorf("movement type = %s, want sale", m.Type)
		}
		if m.ReferenceType != enum.ReferenceTypeOrder {
			t.Errorf("reference type = %s, want order", m.ReferenceType)
		}
		if m.AfterStock != m.BeforeStock+m.Quantity {
			t.Errorf("ledger broken: before %d + qty %d != after %d", m.BeforeStock, m.Quantity, m.AfterStock)
		}
		if m.UserID != env.cashier.ID {
			t.Errorf("movement user = %s, want the order's cashier", m.UserID)
		}
		if m.Notes == nil || *m.Notes != "Order confirmed" {
			t.Error("movement notes missing")
		}
	}

	var reloaded entity.DiningTable
	if err := env.db.First(&reloaded, "id = ?", table.ID).Error; err != nil {
		t.Fatalf("load table: %v", err)
	}
	if reloaded.Status != enum.TableStatusOccupied {
		t.Errorf("table status = %s, want occupied", reloaded.Status)
	}
}

func TestConfirmIsRejectedWhenNotPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Kare-Kare", decimal.NewFromInt(320), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 2}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)

	if _, err := env.orders.Confirm(ctx, order.ID); err == nil {
		t.Fatal("second confirm succeeded, want error")
	}
	// stock deducted exactly once
	if got := env.stockOf(t, p.ID).CurrentStock; got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}
}

func TestHoldOnCreateAndConfirmClearsHold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Pancit", decimal.NewFromInt(180), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
		Hold:     true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !order.IsHeld() {
		t.Fatal("order created with hold flag is not held")
	}

	// confirming a held order works directly and clears the hold
	confirmed := mustConfirm(t, env, order.ID)
	if confirmed.Status != enum.OrderStatusConfirmed {
		t.Errorf("status = %s, want confirmed", confirmed.Status)
	}
	if confirmed.HeldAt != nil {
		t.Error("held_at not cleared by confirm")
	}
	if got := env.stockOf(t, p.ID).CurrentStock; got != 9 {
		t.Errorf("stock = %d, want 9", got)
	}
}

func TestHoldAndResumeArePendingOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Tokwa", decimal.NewFromInt(90), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 1}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	held, err := env.orders.Hold(ctx, order.ID)
	if err != nil {
		t.Fatalf("hold: %v", err)
	}
	if !held.IsHeld() {
		t.Fatal("order not held")
	}

	resumed, err := env.orders.Resume(ctx, order.ID)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.IsHeld() {
		t.Fatal("order still held after resume")
	}

	mustConfirm(t, env, order.ID)
	if _, err := env.orders.Hold(ctx, order.ID); err == nil {
		t.Error("hold of confirmed order succeeded, want error")
	}
}

func TestStatusProgressionAndTableRelease(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Bulalo", decimal.NewFromInt(450), 10)
	table := env.seedTable(t, "T2")

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(&table, OrderItemInput{ProductID: p.ID, Qty: 1}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)

	// pending is not a legal progression target
	if _, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusPending, false); err == nil {
		t.Error("progress to pending succeeded, want error")
	}
	// kitchen cannot mark tickets served
	if _, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusServed, true); err == nil {
		t.Error("kitchen progressed to served, want error")
	}

	first, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusPreparing, true)
	if err != nil {
		t.Fatalf("progress to preparing: %v", err)
	}

	// repeating the current status is a no-op and keeps the original stamp
	repeat, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusPreparing, true)
	if err != nil {
		t.Fatalf("repeated preparing: %v", err)
	}
	if repeat.PreparingAt == nil || !repeat.PreparingAt.Equal(*first.PreparingAt) {
		t.Error("repeated status call overwrote preparing_at")
	}

	if _, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusReady, true); err != nil {
		t.Fatalf("progress to ready: %v", err)
	}

	served, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusServed, false)
	if err != nil {
		t.Fatalf("progress to served: %v", err)
	}
	if served.PreparingAt == nil || served.ReadyAt == nil || served.ServedAt == nil {
		t.Error("progression timestamps missing")
	}

	var reloaded entity.DiningTable
	if err := env.db.First(&reloaded, "id = ?", table.ID).Error; err != nil {
		t.Fatalf("load table: %v", err)
	}
	if reloaded.Status != enum.TableStatusAvailable {
		t.Errorf("table status = %s, want available after served", reloaded.Status)
	}

	// served cannot go back to preparing
	if _, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusPreparing, false); err == nil {
		t.Error("served regressed to preparing, want error")
	}
}

func TestPaymentsRecomputeBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Lechon", decimal.NewFromInt(500), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)

	order, err = env.orders.AddPayment(ctx, order.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodCash,
		Amount: decimal.NewFromInt(300),
	})
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if !order.PaidTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("paid total = %s, want 300", order.PaidTotal)
	}
	if !order.Balance.Equal(decimal.NewFromInt(200)) {
		t.Errorf("balance = %s, want 200", order.Balance)
	}

	// overpay: balance goes negative, which is change due
	order, err = env.orders.AddPayment(ctx, order.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodGcash,
		Amount: decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}
	if !order.PaidTotal.Equal(decimal.NewFromInt(550)) {
		t.Errorf("paid total = %s, want 550", order.PaidTotal)
	}
	if !order.Balance.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("balance = %s, want -50", order.Balance)
	}

	payments, err := env.orders.ListPayments(ctx, order.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 2 {
		t.Errorf("payments = %d, want 2", len(payments))
	}
}

func TestCancelRequiresAdminPinAndKeepsStockDeducted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Sinigang", decimal.NewFromInt(300), 10)
	table := env.seedTable(t, "T3")

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(&table, OrderItemInput{ProductID: p.ID, Qty: 2}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)

	if _, err := env.orders.Cancel(ctx, order.ID, &CancelInput{Reason: "customer left", AdminPin: "9999"}); err == nil {
		t.Fatal("cancel with wrong pin succeeded")
	}

	cancelled, err := env.orders.Cancel(ctx, order.ID, &CancelInput{Reason: "customer left", AdminPin: "1234"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != enum.OrderStatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.VoidedBy == nil || *cancelled.VoidedBy != env.admin.ID {
		t.Error("voided_by not set to authorizing admin")
	}
	if cancelled.VoidReason == nil || *cancelled.VoidReason != "customer left" {
		t.Error("void reason not recorded")
	}

	// confirmed consumption stays committed
	if got := env.stockOf(t, p.ID).CurrentStock; got != 8 {
		t.Errorf("stock = %d, want 8 after cancel", got)
	}

	var reloaded entity.DiningTable
	if err := env.db.First(&reloaded, "id = ?", table.ID).Error; err != nil {
		t.Fatalf("load table: %v", err)
	}
	if reloaded.Status != enum.TableStatusAvailable {
		t.Errorf("table status = %s, want available after cancel", reloaded.Status)
	}

	if _, err := env.orders.AddPayment(ctx, order.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodCash,
		Amount: decimal.NewFromInt(100),
	}); err == nil {
		t.Error("payment on cancelled order succeeded, want error")
	}

	// cancelling twice is rejected
	if _, err := env.orders.Cancel(ctx, order.ID, &CancelInput{AdminPin: "1234"}); err == nil {
		t.Error("second cancel succeeded, want error")
	}
}

func TestCompletedOrderCanBeCancelledWithoutReason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Bicol Express", decimal.NewFromInt(260), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 1}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustConfirm(t, env, order.ID)
	if _, err := env.orders.UpdateStatus(ctx, order.ID, enum.OrderStatusCompleted, false); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// the reason is optional; only the PIN gates the void
	cancelled, err := env.orders.Cancel(ctx, order.ID, &CancelInput{AdminPin: "1234"})
	if err != nil {
		t.Fatalf("cancel completed order: %v", err)
	}
	if cancelled.Status != enum.OrderStatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.VoidReason != nil {
		t.Errorf("void reason = %q, want none", *cancelled.VoidReason)
	}
	if cancelled.CancelledAt == nil {
		t.Error("cancelled_at not set")
	}
}

func TestEditRecomputesTotalsAndReplacesItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tapa := env.seedProduct(t, "Tapa", decimal.NewFromInt(200), 10)
	tocino := env.seedProduct(t, "Tocino", decimal.NewFromInt(180), 10)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: tapa.ID, Qty: 1}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	receipt := order.ReceiptNumber

	order, err = env.orders.Update(ctx, order.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: tocino.ID, Qty: 3}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if order.ReceiptNumber != receipt {
		t.Errorf("receipt changed on edit: %s -> %s", receipt, order.ReceiptNumber)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != tocino.ID {
		t.Fatalf("items not replaced: %+v", order.Items)
	}
	if !order.Total.Equal(decimal.NewFromInt(540)) {
		t.Errorf("total = %s, want 540", order.Total)
	}

	mustConfirm(t, env, order.ID)
	if _, err := env.orders.Update(ctx, order.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: tapa.ID, Qty: 1}},
	}); err == nil {
		t.Error("edit of confirmed order succeeded, want error")
	}
}

func TestDineInRequiresTableAndDeliveryRequiresContact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Bangus", decimal.NewFromInt(220), 10)

	if _, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeDineIn,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
	}); err == nil {
		t.Error("dine-in without table succeeded, want error")
	}

	if _, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType: enum.DineTypeDelivery,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
	}); err == nil {
		t.Error("delivery without contact succeeded, want error")
	}

	name, phone, address := "Maria", "0917", "42 Mabini St"
	if _, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType:     enum.DineTypeDelivery,
		CustomerName: &name,
		Phone:        &phone,
		Items:        []OrderItemInput{{ProductID: p.ID, Qty: 1}},
	}); err == nil {
		t.Error("delivery without address succeeded, want error")
	}

	if _, err := env.orders.Create(ctx, env.cashier.ID, nil, &CreateOrderInput{
		DineType:     enum.DineTypeDelivery,
		CustomerName: &name,
		Phone:        &phone,
		Address:      &address,
		Items:        []OrderItemInput{{ProductID: p.ID, Qty: 1}},
	}); err != nil {
		t.Errorf("delivery with full contact failed: %v", err)
	}
}

func TestKitchenQueueOrderedByConfirmation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Palabok", decimal.NewFromInt(160), 100)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		order, err := env.orders.Create(ctx, env.cashier.ID, nil,
			dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 1}))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		mustConfirm(t, env, order.ID)
		ids = append(ids, order.ID)
	}

	queue, err := env.orders.KitchenQueue(ctx, nil)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(queue))
	}
	for i, order := range queue {
		if order.ID != ids[i] {
			t.Errorf("queue[%d] = %s, want %s", i, order.ID, ids[i])
		}
	}
}

func TestBuildReceipt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Turon", decimal.NewFromInt(50), 100)

	order, err := env.orders.Create(ctx, env.cashier.ID, nil,
		dineInOrder(nil, OrderItemInput{ProductID: p.ID, Qty: 4}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	receipt, err := env.orders.BuildReceipt(ctx, order.ID)
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if receipt.ReceiptNumber != order.ReceiptNumber {
		t.Errorf("receipt number = %s, want %s", receipt.ReceiptNumber, order.ReceiptNumber)
	}
	if len(receipt.Items) != 1 || receipt.Items[0].Name != "Turon" || receipt.Items[0].Qty != 4 {
		t.Errorf("receipt items wrong: %+v", receipt.Items)
	}
	if receipt.Cashier != "Cashier" {
		t.Errorf("cashier = %q, want Cashier", receipt.Cashier)
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

package service

import (
	"context"
	"testing"

	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestShiftOpenCloseReconciliation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Coffee", decimal.NewFromInt(800), 100)

	shift, err := env.shifts.Open(ctx, env.cashier.ID, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !shift.IsOpen() {
		t.Fatal("shift not open after opening")
	}

	// second open while one is running is rejected
	if _, err := env.shifts.Open(ctx, env.cashier.ID, decimal.Zero); err == nil {
		t.Error("second open succeeded, want conflict")
	}

	// one cash sale of 800 tagged with the shift
	order, err := env.orders.Create(ctx, env.cashier.ID, &shift.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	mustConfirm(t, env, order.ID)
	if _, err := env.orders.AddPayment(ctx, order.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodCash,
		Amount: decimal.NewFromInt(800),
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	// gcash settlement on another order must not count toward drawer cash
	other, err := env.orders.Create(ctx, env.cashier.ID, &shift.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create other order: %v", err)
	}
	mustConfirm(t, env, other.ID)
	if _, err := env.orders.AddPayment(ctx, other.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodGcash,
		Amount: decimal.NewFromInt(800),
	}); err != nil {
		t.Fatalf("gcash payment: %v", err)
	}

	closed, err := env.shifts.Close(ctx, env.cashier.ID, &CloseInput{
		ClosingCash: decimal.NewFromInt(1850),
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	if !closed.ExpectedCash.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("expected cash = %s, want 1800", closed.ExpectedCash)
	}
	if !closed.Discrepancy.Equal(decimal.NewFromInt(50)) {
		t.Errorf("discrepancy = %s, want 50", closed.Discrepancy)
	}
	if closed.ClosedAt == nil {
		t.Error("closed_at not set")
	}

	// drawer is closed now
	if _, err := env.shifts.Current(ctx, env.cashier.ID); err == nil {
		t.Error("current returned a shift after close")
	}
	if _, err := env.shifts.Close(ctx, env.cashier.ID, &CloseInput{ClosingCash: decimal.Zero}); err == nil {
		t.Error("second close succeeded, want error")
	}
}

func TestShiftReportReconcilesOpenAndClosedShifts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Espresso", decimal.NewFromInt(150), 100)

	shift, err := env.shifts.Open(ctx, env.cashier.ID, decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	order, err := env.orders.Create(ctx, env.cashier.ID, &shift.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 2}},
		TaxRate:  decimalPtr(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	mustConfirm(t, env, order.ID)
	if _, err := env.orders.AddPayment(ctx, order.ID, env.cashier.ID, &AddPaymentInput{
		Method: enum.PaymentMethodCash,
		Amount: decimal.NewFromInt(300),
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	// without a shift id the report resolves the caller's open shift
	report, err := env.reports.Shift(ctx, env.cashier.ID, nil)
	if err != nil {
		t.Fatalf("report on open shift: %v", err)
	}
	if report.ShiftID != shift.ID {
		t.Errorf("report shift = %s, want %s", report.ShiftID, shift.ID)
	}
	if !report.CashSales.Equal(decimal.NewFromInt(300)) {
		t.Errorf("cash sales = %s, want 300", report.CashSales)
	}
	if !report.ExpectedCash.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected cash = %s, want 800", report.ExpectedCash)
	}

	if _, err := env.shifts.Close(ctx, env.cashier.ID, &CloseInput{
		ClosingCash: decimal.NewFromInt(780),
	}); err != nil {
		t.Fatalf("close: %v", err)
	}

	// by id after close, the snapshot reflects the counted drawer
	report, err = env.reports.Shift(ctx, env.cashier.ID, &shift.ID)
	if err != nil {
		t.Fatalf("report on closed shift: %v", err)
	}
	if report.ClosedAt == nil {
		t.Error("report missing closed_at")
	}
	if !report.Discrepancy.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("discrepancy = %s, want -20", report.Discrepancy)
	}

	// no open shift and no id is a not-found
	if _, err := env.reports.Shift(ctx, env.cashier.ID, nil); err == nil {
		t.Error("report without open shift succeeded, want error")
	}
}

func TestShiftTagSurvivesClose(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.seedProduct(t, "Tea", decimal.NewFromInt(100), 100)

	shift, err := env.shifts.Open(ctx, env.cashier.ID, decimal.Zero)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	order, err := env.orders.Create(ctx, env.cashier.ID, &shift.ID, &CreateOrderInput{
		DineType: enum.DineTypeTakeout,
		Items:    []OrderItemInput{{ProductID: p.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := env.shifts.Close(ctx, env.cashier.ID, &CloseInput{ClosingCash: decimal.Zero}); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, err := env.orders.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.ShiftID == nil || *reloaded.ShiftID != shift.ID {
		t.Error("order lost its shift tag after close")
	}
}

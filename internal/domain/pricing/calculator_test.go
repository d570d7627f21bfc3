package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalculateTaxOnly(t *testing.T) {
	lines := []Line{{Price: d("280.00"), Qty: 2, DiscountAmount: decimal.Zero}}
	got := Calculate(lines, Charges{
		DiscountAmount:    decimal.Zero,
		ServiceChargeRate: decimal.Zero,
		TaxRate:           d("12"),
		Rounding:          decimal.Zero,
	})

	if !got.Subtotal.Equal(d("560.00")) {
		t.Errorf("subtotal = %s, want 560.00", got.Subtotal)
	}
	if !got.TaxAmount.Equal(d("67.20")) {
		t.Errorf("tax_amount = %s, want 67.20", got.TaxAmount)
	}
	if !got.Total.Equal(d("627.20")) {
		t.Errorf("total = %s, want 627.20", got.Total)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	lines := []Line{
		{Price: d("99.99"), Qty: 3, DiscountAmount: d("10.50")},
		{Price: d("45.25"), Qty: 1, DiscountAmount: decimal.Zero},
	}
	charges := Charges{
		DiscountAmount:    d("5.00"),
		ServiceChargeRate: d("10"),
		TaxRate:           d("12"),
		Rounding:          d("-0.02"),
	}

	first := Calculate(lines, charges)
	second := Calculate(lines, charges)

	if !first.Total.Equal(second.Total) || !first.TaxAmount.Equal(second.TaxAmount) {
		t.Errorf("calculate not deterministic: %s vs %s", first.Total, second.Total)
	}
}

func TestCalculateItemAndOrderDiscounts(t *testing.T) {
	lines := []Line{
		{Price: d("100.00"), Qty: 2, DiscountAmount: d("20.00")},
		{Price: d("50.00"), Qty: 1, DiscountAmount: d("5.00")},
	}
	got := Calculate(lines, Charges{DiscountAmount: d("25.00")})

	if !got.Subtotal.Equal(d("250.00")) {
		t.Errorf("subtotal = %s, want 250.00", got.Subtotal)
	}
	if !got.DiscountAmount.Equal(d("50.00")) {
		t.Errorf("discount_amount = %s, want 50.00", got.DiscountAmount)
	}
	if !got.Total.Equal(d("200.00")) {
		t.Errorf("total = %s, want 200.00", got.Total)
	}
}

func TestCalculateClampsNegativeNetBase(t *testing.T) {
	lines := []Line{{Price: d("10.00"), Qty: 1}}
	got := Calculate(lines, Charges{
		DiscountAmount: d("50.00"),
		TaxRate:        d("12"),
	})

	// net base clamps to zero, so tax has nothing to apply to
	if !got.TaxAmount.Equal(decimal.Zero) {
		t.Errorf("tax_amount = %s, want 0", got.TaxAmount)
	}
	if !got.Total.Equal(decimal.Zero) {
		t.Errorf("total = %s, want 0", got.Total)
	}
}

func TestCalculateRoundingAdjustment(t *testing.T) {
	lines := []Line{{Price: d("33.33"), Qty: 3}}
	got := Calculate(lines, Charges{Rounding: d("0.01")})

	if !got.Total.Equal(d("100.00")) {
		t.Errorf("total = %s, want 100.00", got.Total)
	}
}

func TestCalculateServiceChargeAndTaxShareNetBase(t *testing.T) {
	lines := []Line{{Price: d("200.00"), Qty: 1}}
	got := Calculate(lines, Charges{
		DiscountAmount:    d("100.00"),
		ServiceChargeRate: d("10"),
		TaxRate:           d("12"),
	})

	// both charges apply to the discounted base, not the raw subtotal
	if !got.ServiceChargeAmount.Equal(d("10.00")) {
		t.Errorf("service_charge_amount = %s, want 10.00", got.ServiceChargeAmount)
	}
	if !got.TaxAmount.Equal(d("12.00")) {
		t.Errorf("tax_amount = %s, want 12.00", got.TaxAmount)
	}
	if !got.Total.Equal(d("122.00")) {
		t.Errorf("total = %s, want 122.00", got.Total)
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(Line{Price: d("19.99"), Qty: 3, DiscountAmount: d("2.50")})
	if !got.Equal(d("57.47")) {
		t.Errorf("line total = %s, want 57.47", got)
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(d("627.20"), d("500.00")); !got.Equal(d("127.20")) {
		t.Errorf("balance = %s, want 127.20", got)
	}
	// overpayment produces a negative balance, nothing clamps it
	if got := Balance(d("100.00"), d("150.00")); !got.Equal(d("-50.00")) {
		t.Errorf("balance = %s, want -50.00", got)
	}
}

// Package pricing turns a cart into a fully itemized order total. It is pure
// arithmetic over fixed-point decimals: no side effects, no I/O. The same
// computation runs on order creation and order edit (full recompute, never
// incremental).
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is one cart line as priced at snapshot time.
type Line struct {
	Price          decimal.Decimal
	Qty            int
	DiscountAmount decimal.Decimal
}

// Charges are the order-level rates and amounts applied on top of the lines.
type Charges struct {
	DiscountAmount    decimal.Decimal
	ServiceChargeRate decimal.Decimal
	TaxRate           decimal.Decimal
	Rounding          decimal.Decimal
}

// Totals is the itemized result persisted onto the order.
type Totals struct {
	Subtotal            decimal.Decimal
	DiscountAmount      decimal.Decimal
	ServiceChargeRate   decimal.Decimal
	ServiceChargeAmount decimal.Decimal
	TaxRate             decimal.Decimal
	TaxAmount           decimal.Decimal
	Rounding            decimal.Decimal
	Total               decimal.Decimal
}

// LineSubtotal returns round(price * qty, 2) for one line.
func LineSubtotal(l Line) decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty))).Round(2)
}

// LineTotal returns the line subtotal less the line's own discount,
// rounded to 2 decimals.
func LineTotal(l Line) decimal.Decimal {
	return LineSubtotal(l).Sub(l.DiscountAmount).Round(2)
}

// Calculate produces the itemized totals for a cart. Every intermediate
// result is rounded to 2 decimals at the stated step. A negative net base is
// clamped to zero before charges apply; nothing else is clamped.
func Calculate(lines []Line, c Charges) Totals {
	subtotal := decimal.Zero
	itemDiscounts := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineSubtotal(l))
		itemDiscounts = itemDiscounts.Add(l.DiscountAmount)
	}
	subtotal = subtotal.Round(2)

	discountTotal := itemDiscounts.Add(c.DiscountAmount).Round(2)

	netBase := subtotal.Sub(discountTotal).Round(2)
	if netBase.IsNegative() {
		netBase = decimal.Zero
	}

	serviceAmount := netBase.Mul(c.ServiceChargeRate).Div(hundred).Round(2)
	taxAmount := netBase.Mul(c.TaxRate).Div(hundred).Round(2)
	total := netBase.Add(serviceAmount).Add(taxAmount).Add(c.Rounding).Round(2)

	return Totals{
		Subtotal:            subtotal,
		DiscountAmount:      discountTotal,
		ServiceChargeRate:   c.ServiceChargeRate,
		ServiceChargeAmount: serviceAmount,
		TaxRate:             c.TaxRate,
		TaxAmount:           taxAmount,
		Rounding:            c.Rounding,
		Total:               total,
	}
}

// Balance returns round(total - paidTotal, 2).
func Balance(total, paidTotal decimal.Decimal) decimal.Decimal {
	return total.Sub(paidTotal).Round(2)
}

package entity

import "github.com/shopspring/decimal"

// ReceiptItem represents a single line item on a printable receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ReceiptPayment represents one settlement line on a receipt.
type ReceiptPayment struct {
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	ReferenceNo string          `json:"reference_no,omitempty"`
}

// Receipt is a value object representing a printable receipt. It is not a
// database entity; it is composed from order data at print time.
type Receipt struct {
	ReceiptNumber string           `json:"receipt_number"`
	Date          string           `json:"date"`
	DineType      string           `json:"dine_type"`
	Table         string           `json:"table,omitempty"`
	Cashier       string           `json:"cashier,omitempty"`
	Items         []ReceiptItem    `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Discount      decimal.Decimal  `json:"discount"`
	ServiceCharge decimal.Decimal  `json:"service_charge"`
	Tax           decimal.Decimal  `json:"tax"`
	Rounding      decimal.Decimal  `json:"rounding"`
	Total         decimal.Decimal  `json:"total"`
	Payments      []ReceiptPayment `json:"payments"`
	PaidTotal     decimal.Decimal  `json:"paid_total"`
	Balance       decimal.Decimal  `json:"balance"`
}

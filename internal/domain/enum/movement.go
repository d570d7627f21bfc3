package enum

// MovementType classifies a stock-movement ledger entry
type MovementType string

const (
	// MovementTypeSale is created only when an order is confirmed
	MovementTypeSale       MovementType = "sale"
	MovementTypeRestock    MovementType = "restock"
	MovementTypeAdjustment MovementType = "adjustment"
)

func (t MovementType) String() string {
	return string(t)
}

// IsManual reports whether t may be created through the manual adjust endpoint
func (t MovementType) IsManual() bool {
	return t == MovementTypeRestock || t == MovementTypeAdjustment
}

// ReferenceType identifies what caused a stock movement
type ReferenceType string

const (
	// ReferenceTypeOrder points at the order that triggered a sale movement
	ReferenceTypeOrder ReferenceType = "order"
	// ReferenceTypeManual marks user-triggered restocks and adjustments
	ReferenceTypeManual ReferenceType = "manual"
)

func (r ReferenceType) String() string {
	return string(r)
}

package enum

// DineType represents the fulfillment mode of an order
type DineType string

const (
	DineTypeDineIn   DineType = "dine_in"
	DineTypeTakeout  DineType = "takeout"
	DineTypeDelivery DineType = "delivery"
)

func (d DineType) String() string {
	return string(d)
}

// IsValid reports whether d is a known dine type
func (d DineType) IsValid() bool {
	switch d {
	case DineTypeDineIn, DineTypeTakeout, DineTypeDelivery:
		return true
	}
	return false
}

// RequiresTable reports whether orders of this type must reference a table
func (d DineType) RequiresTable() bool {
	return d == DineTypeDineIn
}

// RequiresContact reports whether orders of this type must carry customer
// name, phone and address
func (d DineType) RequiresContact() bool {
	return d == DineTypeDelivery
}

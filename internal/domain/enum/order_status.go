package enum

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusServed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsProgressTarget reports whether s is a valid target for the kitchen /
// front-of-house progression endpoint. Pending, confirmed and cancelled are
// reached only through their dedicated operations.
func (s OrderStatus) IsProgressTarget() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusCompleted:
		return true
	}
	return false
}

// IsKitchenTarget reports whether s may be set from the kitchen display,
// which only moves tickets to preparing or ready.
func (s OrderStatus) IsKitchenTarget() bool {
	return s == OrderStatusPreparing || s == OrderStatusReady
}

// Releases reports whether reaching s hands a dine-in table back to the floor.
func (s OrderStatus) Releases() bool {
	return s == OrderStatusServed || s == OrderStatusCompleted
}

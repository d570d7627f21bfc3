package enum

// PaymentMethod represents how a settlement was received
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodGcash PaymentMethod = "gcash"
	PaymentMethodCard  PaymentMethod = "card"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodGcash, PaymentMethodCard:
		return true
	}
	return false
}

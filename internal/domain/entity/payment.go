package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment represents one settlement event against an order. Rows are
// append-only: never updated or deleted. The order's paid_total is always
// recomputed from the sum of its payments, not incremented in place.
type Payment struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	Method      enum.PaymentMethod `gorm:"size:30;not null" json:"method"`
	Amount      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	ReferenceNo *string            `gorm:"size:120" json:"reference_no,omitempty"`
	PaidAt      time.Time          `gorm:"not null" json:"paid_at"`
	ReceivedBy  uuid.UUID          `gorm:"type:uuid;not null" json:"received_by"`
	CreatedAt   time.Time          `json:"created_at"`

	// Relationships
	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

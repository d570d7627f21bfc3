package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents one ticket. Monetary fields persist as decimal(12,2);
// balance is always round(total - paid_total, 2) after every payment or edit.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNumber string           `gorm:"size:40;unique;not null" json:"receipt_number"`
	Status        enum.OrderStatus `gorm:"size:30;not null;default:'pending';index" json:"status"`
	DineType      enum.DineType    `gorm:"size:30;not null;default:'dine_in'" json:"dine_type"`
	TableID       *uuid.UUID       `gorm:"type:uuid;index" json:"table_id,omitempty"`
	CustomerName  *string          `gorm:"size:120" json:"customer_name,omitempty"`
	Phone         *string          `gorm:"size:30" json:"phone,omitempty"`
	Address       *string          `gorm:"type:text" json:"address,omitempty"`

	Subtotal            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	DiscountAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount_amount"`
	ServiceChargeRate   decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"service_charge_rate"`
	ServiceChargeAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"service_charge_amount"`
	TaxRate             decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount           decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax_amount"`
	Rounding            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"rounding"`
	Total               decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total"`
	PaidTotal           decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"paid_total"`
	Balance             decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balance"`

	HeldAt      *time.Time `json:"held_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	PreparingAt *time.Time `json:"preparing_at,omitempty"`
	ReadyAt     *time.Time `json:"ready_at,omitempty"`
	ServedAt    *time.Time `json:"served_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	VoidedBy   *uuid.UUID `gorm:"type:uuid" json:"voided_by,omitempty"`
	VoidReason *string    `gorm:"size:255" json:"void_reason,omitempty"`
	CashierID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"cashier_id"`
	ShiftID    *uuid.UUID `gorm:"type:uuid;index" json:"shift_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items    []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
	Table    *DiningTable  `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Cashier  *User         `gorm:"foreignKey:CashierID" json:"-"`
	Shift    *CashierShift `gorm:"foreignKey:ShiftID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsHeld reports whether the order is currently parked
func (o *Order) IsHeld() bool {
	return o.HeldAt != nil
}

// OrderItem represents a line in an order. Name and price are snapshots taken
// at creation/edit time and stay fixed even if the product record changes.
// On edit all prior items for the order are deleted and replaced.
type OrderItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	NameSnapshot   string          `gorm:"size:160;not null" json:"name_snapshot"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Qty            int             `gorm:"not null" json:"qty"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount_amount"`
	LineTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
	Notes          *string         `gorm:"size:200" json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Relationships
	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

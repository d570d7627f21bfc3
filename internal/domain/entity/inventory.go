package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// InventoryStock holds the current on-hand count for one product. Rows are
// created lazily on first reference. Stock may go negative; no floor is
// enforced.
type InventoryStock struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;unique;not null" json:"product_id"`
	CurrentStock int            `gorm:"default:0" json:"current_stock"`
	ReorderLevel int            `gorm:"default:0" json:"reorder_level"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock row
func (s *InventoryStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryStock model
func (InventoryStock) TableName() string {
	return "inventory_stocks"
}

// IsLow reports whether the product has reached its reorder threshold
func (s *InventoryStock) IsLow() bool {
	return s.CurrentStock <= s.ReorderLevel
}

// StockMovement is one append-only ledger entry. after_stock must equal
// before_stock + quantity for every row, and summing the quantity deltas for
// a product reconstructs its current stock.
type StockMovement struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"product_id"`
	Type          enum.MovementType  `gorm:"size:30;not null" json:"type"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	BeforeStock   int                `gorm:"not null" json:"before_stock"`
	AfterStock    int                `gorm:"not null" json:"after_stock"`
	ReferenceType enum.ReferenceType `gorm:"size:30;not null" json:"reference_type"`
	ReferenceID   *uuid.UUID         `gorm:"type:uuid" json:"reference_id,omitempty"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null" json:"user_id"`
	Notes         *string            `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashierShift represents one cash-drawer session. A user may have at most
// one open shift (closed_at null) at a time; orders created while it is open
// are tagged with its id permanently.
type CashierShift struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OpenedAt     time.Time       `gorm:"not null" json:"opened_at"`
	ClosedAt     *time.Time      `json:"closed_at,omitempty"`
	OpeningCash  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"opening_cash"`
	ClosingCash  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"closing_cash"`
	ExpectedCash decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"expected_cash"`
	Discrepancy  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discrepancy"`
	Notes        *string         `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `gorm:"foreignKey:ShiftID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shift
func (s *CashierShift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashierShift model
func (CashierShift) TableName() string {
	return "cashier_shifts"
}

// IsOpen reports whether the shift has not been closed yet
func (s *CashierShift) IsOpen() bool {
	return s.ClosedAt == nil
}

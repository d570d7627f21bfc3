package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptSequence is the per-calendar-day monotonic counter behind receipt
// numbers. One row per date; last_number is strictly increasing and never
// reused. Each new date gets a fresh row, so no reset job exists.
type ReceiptSequence struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date       string    `gorm:"size:10;unique;not null" json:"date"`
	LastNumber int       `gorm:"default:0" json:"last_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new sequence row
func (r *ReceiptSequence) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptSequence model
func (ReceiptSequence) TableName() string {
	return "receipt_sequences"
}

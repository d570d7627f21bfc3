package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PosSetting holds the store-wide defaults applied to new orders. A single
// row is created lazily with tax 12% and service charge 0%.
type PosSetting struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Key               string          `gorm:"size:40;unique;not null" json:"key"`
	TaxRate           decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	ServiceChargeRate decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"service_charge_rate"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new setting row
func (s *PosSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PosSetting model
func (PosSetting) TableName() string {
	return "pos_settings"
}

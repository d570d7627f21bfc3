package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// DiningTable represents a physical table on the floor
type DiningTable struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:80;unique;not null" json:"name"`
	Capacity  int             `gorm:"not null" json:"capacity"`
	Status    enum.TableStatus `gorm:"size:30;default:'available'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiningTable model
func (DiningTable) TableName() string {
	return "dining_tables"
}

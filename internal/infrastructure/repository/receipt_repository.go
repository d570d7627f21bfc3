package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/linato/linato-pos/internal/domain/entity"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt sequence repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) WithTx(tx *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: tx}
}

// NextNumber takes an exclusive row lock on the sequence row for the date,
// creating it with counter zero when absent, then increments and formats.
// The row lock is the sole serialization point: concurrent callers for the
// same date queue behind it and each observes a distinct counter value.
func (r *receiptRepository) NextNumber(ctx context.Context, date time.Time) (string, error) {
	day := date.Format("2006-01-02")

	var seq entity.ReceiptSequence
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", day).
		First(&seq).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return "", err
		}
		seq = entity.ReceiptSequence{Date: day, LastNumber: 0}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return "", err
		}
	}

	seq.LastNumber++
	if err := r.db.WithContext(ctx).Save(&seq).Error; err != nil {
		return "", err
	}

	return FormatReceiptNumber(date, seq.LastNumber), nil
}

// FormatReceiptNumber renders a receipt identifier as LIN-YYYYMMDD-#### with
// the counter zero-padded to four digits.
func FormatReceiptNumber(date time.Time, n int) string {
	return fmt.Sprintf("LIN-%s-%04d", date.Format("20060102"), n)
}

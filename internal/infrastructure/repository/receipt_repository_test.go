package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/linato/linato-pos/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFormatReceiptNumber(t *testing.T) {
	date := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		n    int
		want string
	}{
		{1, "LIN-20250309-0001"},
		{42, "LIN-20250309-0042"},
		{9999, "LIN-20250309-9999"},
		{10000, "LIN-20250309-10000"},
	}
	for _, tt := range tests {
		if got := FormatReceiptNumber(date, tt.n); got != tt.want {
			t.Errorf("FormatReceiptNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNextNumberConcurrentCallersGetDistinctNumbers(t *testing.T) {
	dsn := os.Getenv("POS_TEST_DSN")
	if dsn == "" {
		t.Skip("POS_TEST_DSN not set, skipping database integration test")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(&entity.ReceiptSequence{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE receipt_sequences").Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}

	const workers = 10
	date := time.Now()

	seed := entity.ReceiptSequence{Date: date.Format("2006-01-02"), LastNumber: 0}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed sequence: %v", err)
	}

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// each caller runs in its own transaction, like order creation
			err := db.Transaction(func(tx *gorm.DB) error {
				number, err := NewReceiptRepository(tx).NextNumber(context.Background(), date)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				if seen[number] {
					t.Errorf("duplicate receipt number %s", number)
				}
				seen[number] = true
				return nil
			})
			if err != nil {
				t.Errorf("next number: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers {
		t.Errorf("distinct numbers = %d, want %d", len(seen), workers)
	}
}

package database

import (
	"fmt"
	"log"
	"time"

	"github.com/linato/linato-pos/internal/config"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Identity
		&entity.User{},

		// Catalog
		&entity.Category{},
		&entity.Product{},
		&entity.DiningTable{},

		// Inventory
		&entity.InventoryStock{},
		&entity.StockMovement{},

		// Order lifecycle
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},

		// Cash handling
		&entity.CashierShift{},
		&entity.ReceiptSequence{},

		// System
		&entity.PosSetting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with an initial admin account and the
// default POS settings when the store is empty
func SeedDefaultData(db *gorm.DB, cfg *config.POSConfig) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount == 0 {
		log.Println("Seeding default users...")

		passwordHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		pinHash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		adminPin := string(pinHash)

		users := []entity.User{
			{Name: "Admin", Email: "admin@linato.local", Password: string(passwordHash), Role: enum.RoleAdmin, PinHash: &adminPin, IsActive: true},
			{Name: "Cashier", Email: "cashier@linato.local", Password: string(passwordHash), Role: enum.RoleCashier, IsActive: true},
			{Name: "Kitchen", Email: "kitchen@linato.local", Password: string(passwordHash), Role: enum.RoleKitchen, IsActive: true},
		}
		for i := range users {
			if err := db.Create(&users[i]).Error; err != nil {
				return err
			}
		}
	}

	var settingCount int64
	if err := db.Model(&entity.PosSetting{}).Where("key = ?", "pos").Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		setting := entity.PosSetting{
			Key:               "pos",
			TaxRate:           decimal.NewFromFloat(cfg.DefaultTaxRate),
			ServiceChargeRate: decimal.NewFromFloat(cfg.DefaultServiceChargeRate),
		}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}

	return nil
}

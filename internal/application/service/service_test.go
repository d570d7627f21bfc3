package service

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/infrastructure/database"
	"github.com/linato/linato-pos/internal/infrastructure/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a real Postgres database.
// Tests that need it are skipped unless POS_TEST_DSN is set, because the
// receipt sequencer and confirm path rely on SELECT ... FOR UPDATE.
type testEnv struct {
	db        *gorm.DB
	orders    *OrderService
	inventory *InventoryService
	shifts    *ShiftService
	settings  *SettingsService
	products  *ProductService
	reports   *ReportService

	admin   entity.User
	cashier entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

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

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tables := []string{
		"payments", "order_items", "orders", "stock_movements",
		"inventory_stocks", "cashier_shifts", "receipt_sequences",
		"products", "categories", "dining_tables", "pos_settings", "users",
	}
	for _, table := range tables {
		if err := db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}

	env := &testEnv{db: db}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	reportRepo := repository.NewReportRepository(db)

	defaultTax := decimal.NewFromInt(12)
	defaultSvc := decimal.Zero

	env.orders = NewOrderService(db, orderRepo, paymentRepo, productRepo, inventoryRepo, tableRepo, receiptRepo, settingRepo, userRepo, defaultTax, defaultSvc)
	env.inventory = NewInventoryService(db, inventoryRepo, productRepo)
	env.shifts = NewShiftService(db, shiftRepo, paymentRepo)
	env.settings = NewSettingsService(settingRepo, defaultTax, defaultSvc)
	env.products = NewProductService(productRepo, categoryRepo, inventoryRepo)
	env.reports = NewReportService(reportRepo, shiftRepo, paymentRepo)

	pinHash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	pin := string(pinHash)

	env.admin = entity.User{Name: "Admin", Email: "admin@test.local", Password: "x", Role: enum.RoleAdmin, PinHash: &pin, IsActive: true}
	env.cashier = entity.User{Name: "Cashier", Email: "cashier@test.local", Password: "x", Role: enum.RoleCashier, IsActive: true}
	for _, u := range []*entity.User{&env.admin, &env.cashier} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	return env
}

// seedProduct creates a category, product and initial stock level
func (e *testEnv) seedProduct(t *testing.T, name string, price decimal.Decimal, stock int) entity.Product {
	t.Helper()

	category := entity.Category{Name: "Mains " + uuid.NewString()[:8]}
	if err := e.db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	product := entity.Product{
		CategoryID: category.ID,
		Name:       name,
		SKU:        uuid.NewString()[:12],
		Price:      price,
		IsActive:   true,
	}
	if err := e.db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if err := e.db.Create(&entity.InventoryStock{ProductID: product.ID, CurrentStock: stock}).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
	return product
}

func (e *testEnv) seedTable(t *testing.T, name string) entity.DiningTable {
	t.Helper()

	table := entity.DiningTable{Name: name, Capacity: 4, Status: enum.TableStatusAvailable}
	if err := e.db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func (e *testEnv) stockOf(t *testing.T, productID uuid.UUID) entity.InventoryStock {
	t.Helper()

	var stock entity.InventoryStock
	if err := e.db.First(&stock, "product_id = ?", productID).Error; err != nil {
		t.Fatalf("load stock: %v", err)
	}
	return stock
}

func mustConfirm(t *testing.T, env *testEnv, orderID uuid.UUID) *entity.Order {
	t.Helper()

	order, err := env.orders.Confirm(context.Background(), orderID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	return order
}

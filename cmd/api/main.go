package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/config"
	"github.com/linato/linato-pos/internal/infrastructure/database"
	"github.com/linato/linato-pos/internal/infrastructure/repository"
	"github.com/linato/linato-pos/internal/presentation/http/handler"
	"github.com/linato/linato-pos/internal/presentation/http/routes"
	"github.com/linato/linato-pos/pkg/utils"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default accounts and settings
	if err := database.SeedDefaultData(db, &cfg.POS); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
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

	defaultTax := decimal.NewFromFloat(cfg.POS.DefaultTaxRate)
	defaultSvc := decimal.NewFromFloat(cfg.POS.DefaultServiceChargeRate)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	orderService := service.NewOrderService(db, orderRepo, paymentRepo, productRepo, inventoryRepo, tableRepo, receiptRepo, settingRepo, userRepo, defaultTax, defaultSvc)
	inventoryService := service.NewInventoryService(db, inventoryRepo, productRepo)
	shiftService := service.NewShiftService(db, shiftRepo, paymentRepo)
	productService := service.NewProductService(productRepo, categoryRepo, inventoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tableService := service.NewTableService(tableRepo)
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingRepo, defaultTax, defaultSvc)
	reportService := service.NewReportService(reportRepo, shiftRepo, paymentRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService, shiftService),
		KDS:       handler.NewKDSHandler(orderService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Shift:     handler.NewShiftHandler(shiftService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Table:     handler.NewTableHandler(tableService),
		User:      handler.NewUserHandler(userService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

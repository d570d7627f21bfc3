package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linato/linato-pos/internal/config"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/presentation/http/handler"
	"github.com/linato/linato-pos/internal/presentation/http/middleware"
	"github.com/linato/linato-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	KDS       *handler.KDSHandler
	Inventory *handler.InventoryHandler
	Shift     *handler.ShiftHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Table     *handler.TableHandler
	User      *handler.UserHandler
	Settings  *handler.SettingsHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := enum.RoleAdmin.String()
	cashier := enum.RoleCashier.String()
	kitchen := enum.RoleKitchen.String()

	// Profile
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Menu browsing is open to all roles; the POS grid and KDS both read it
	protected.GET("/categories", h.Category.List)
	protected.GET("/products", h.Product.List)
	protected.GET("/products/:id", h.Product.Get)
	protected.GET("/tables", h.Table.List)

	// Orders: cashiers and admins run the front of house
	front := protected.Group("", middleware.RequireRole(admin, cashier))
	{
		front.POST("/orders", h.Order.Create)
		front.GET("/orders", h.Order.List)
		front.GET("/orders/:id", h.Order.Get)
		front.PUT("/orders/:id", h.Order.Update)
		front.POST("/orders/:id/hold", h.Order.Hold)
		front.POST("/orders/:id/resume", h.Order.Resume)
		front.POST("/orders/:id/confirm", h.Order.Confirm)
		front.POST("/orders/:id/cancel", h.Order.Cancel)
		front.POST("/orders/:id/payments", h.Order.AddPayment)
		front.GET("/orders/:id/payments", h.Order.ListPayments)
		front.GET("/orders/:id/receipt", h.Order.Receipt)

		front.POST("/shifts/open", h.Shift.Open)
		front.GET("/shifts/current", h.Shift.Current)
		front.POST("/shifts/close", h.Shift.Close)
		front.GET("/shifts/:id", h.Shift.Get)
	}

	// Status progression: kitchen moves tickets to preparing/ready, front of
	// house takes them the rest of the way. The handler narrows kitchen users
	// to their targets.
	protected.PATCH("/orders/:id/status", middleware.RequireRole(admin, cashier, kitchen), h.Order.UpdateStatus)

	// Kitchen display
	protected.GET("/kitchen/orders", middleware.RequireRole(admin, kitchen), h.KDS.Queue)

	// Admin-only management
	back := protected.Group("", middleware.RequireRole(admin))
	{
		back.POST("/categories", h.Category.Create)
		back.PUT("/categories/:id", h.Category.Update)
		back.DELETE("/categories/:id", h.Category.Delete)

		back.POST("/products", h.Product.Create)
		back.PUT("/products/:id", h.Product.Update)
		back.DELETE("/products/:id", h.Product.Delete)

		back.POST("/tables", h.Table.Create)
		back.PUT("/tables/:id", h.Table.Update)
		back.DELETE("/tables/:id", h.Table.Delete)

		back.GET("/inventory", h.Inventory.ListStocks)
		back.GET("/inventory/low-stock", h.Inventory.LowStock)
		back.GET("/inventory/movements", h.Inventory.ListMovements)
		back.POST("/inventory/adjust", h.Inventory.Adjust)
		back.PUT("/inventory/:productId", h.Inventory.SetStock)

		back.GET("/reports/daily", h.Report.Daily)
		back.GET("/reports/products", h.Report.SalesByProduct)
		back.GET("/reports/categories", h.Report.SalesByCategory)
		back.GET("/reports/shift", h.Report.Shift)

		back.GET("/settings/pos", h.Settings.Get)
		back.PUT("/settings/pos", h.Settings.Update)

		back.POST("/users", h.User.Create)
		back.GET("/users", h.User.List)
		back.GET("/users/:id", h.User.Get)
		back.PUT("/users/:id", h.User.Update)
		back.PATCH("/users/:id/pin", h.User.SetPin)
	}
}

package routes

import (
	"time"

	"main-gestdoc/internal/adapters/http/handlers"
	"main-gestdoc/internal/adapters/http/middleware"
	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/config"
	"main-gestdoc/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	statusConfigRepo := repositories.NewStatusConfigRepository(db)
	statusHistoryRepo := repositories.NewStatusHistoryRepository(db)

	// Document stores, one per variant
	budgetStore := repositories.NewBudgetStore(db)
	purchaseOrderStore := repositories.NewPurchaseOrderStore(db)
	workOrderStore := repositories.NewWorkOrderStore(db)
	invoiceStore := repositories.NewInvoiceStore(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo, profileRepo, groupRepo, activityRepo)
	clientService := services.NewClientService(clientRepo, activityRepo)
	statusConfigService := services.NewStatusConfigService(statusConfigRepo, activityRepo)
	navigationService := services.NewNavigationService()

	budgetService := services.NewDocumentService[models.Budget](
		budgetStore, clientRepo, userRepo, statusConfigRepo, statusHistoryRepo, activityRepo)
	purchaseOrderService := services.NewDocumentService[models.PurchaseOrder](
		purchaseOrderStore, clientRepo, userRepo, statusConfigRepo, statusHistoryRepo, activityRepo)
	workOrderService := services.NewDocumentService[models.WorkOrder](
		workOrderStore, clientRepo, userRepo, statusConfigRepo, statusHistoryRepo, activityRepo)
	invoiceService := services.NewDocumentService[models.Invoice](
		invoiceStore, clientRepo, userRepo, statusConfigRepo, statusHistoryRepo, activityRepo)

	dashboardService := services.NewDashboardService(
		clientRepo, budgetStore, purchaseOrderStore, workOrderStore, invoiceStore, activityRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	statusConfigHandler := handlers.NewStatusConfigHandler(statusConfigService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	navigationHandler := handlers.NewNavigationHandler(navigationService)

	budgetHandler := handlers.NewDocumentHandler(budgetService)
	purchaseOrderHandler := handlers.NewDocumentHandler(purchaseOrderService)
	workOrderHandler := handlers.NewDocumentHandler(workOrderService)
	invoiceHandler := handlers.NewDocumentHandler(invoiceService)

	// Health routes (public)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := apiV1.Group("/auth", middleware.NoCacheHeaders())
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Everything below requires authentication
	protected := apiV1.Group("", middleware.AuthMiddleware(cfg))

	// Dashboard (any authenticated role)
	protected.Get("/dashboard", dashboardHandler.GetStats)

	// Navigation shell (any authenticated role); the item set only varies
	// per role, so responses are privately cacheable for a short while
	navRoutes := protected.Group("/navigation", middleware.PrivateCacheHeaders(5*time.Minute))
	navRoutes.Get("/", navigationHandler.GetItems)
	navRoutes.Get("/title", navigationHandler.GetTitle)

	// Clients (Admin or Manager)
	clientRoutes := protected.Group("/clients", middleware.AdminOrManager())
	clientRoutes.Get("/", clientHandler.ListClients)
	clientRoutes.Post("/", clientHandler.CreateClient)
	clientRoutes.Get("/:id", clientHandler.GetClient)
	clientRoutes.Put("/:id", clientHandler.UpdateClient)
	clientRoutes.Delete("/:id", clientHandler.DeleteClient)

	// Documents (any authenticated role), one group per variant
	registerDocumentRoutes(protected, "/budgets", budgetHandler)
	registerDocumentRoutes(protected, "/purchase-orders", purchaseOrderHandler)
	registerDocumentRoutes(protected, "/work-orders", workOrderHandler)
	registerDocumentRoutes(protected, "/invoices", invoiceHandler)

	// User administration (Admin only)
	userRoutes := protected.Group("/admin/users", middleware.AdminOnly())
	userRoutes.Get("/", userHandler.ListUsers)
	userRoutes.Post("/", userHandler.CreateUser)
	userRoutes.Get("/:id", userHandler.GetUser)
	userRoutes.Put("/:id", userHandler.UpdateUser)
	userRoutes.Delete("/:id", userHandler.DeleteUser)

	// Status whitelist administration (Admin only)
	statusRoutes := protected.Group("/admin/statuses", middleware.AdminOnly())
	statusRoutes.Get("/", statusConfigHandler.ListConfigs)
	statusRoutes.Get("/:type", statusConfigHandler.GetConfig)
	statusRoutes.Put("/:type", statusConfigHandler.UpdateConfig)

	// 404 JSON envelope for unknown API paths
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
			"error":   "Not Found",
		})
	})
}

// registerDocumentRoutes wires one variant's handler under its path prefix
func registerDocumentRoutes[T any, PT services.DocPtr[T]](router fiber.Router, prefix string, handler *handlers.DocumentHandler[T, PT]) {
	docRoutes := router.Group(prefix)
	docRoutes.Get("/", handler.ListDocuments)
	docRoutes.Post("/", handler.CreateDocument)
	docRoutes.Get("/statuses", handler.AvailableStatuses)
	docRoutes.Get("/:id", handler.GetDocument)
	docRoutes.Put("/:id", handler.UpdateDocument)
	docRoutes.Delete("/:id", handler.DeleteDocument)
	docRoutes.Put("/:id/status", handler.ChangeStatus)
	docRoutes.Get("/:id/history", handler.StatusHistory)
}

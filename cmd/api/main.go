package main

import (
	"fmt"
	"net/http"
	"os"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           SpendWise API
// @version         1.0
// @description     SpendWise is a personal expense tracker that allows users to record categorized expenses, set a monthly budget, and follow their spending through a reporting dashboard.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	settingsService := services.NewSettingsService(db)
	reportService := services.NewReportService(expenseService, budgetService, settingsService)
	adminService := services.NewAdminService(db)
	oauthService := services.NewOAuthService(appConfig)
	auditService := services.NewAuditService(db)

	if !oauthService.Enabled() {
		log.Warn("Google OAuth credentials not configured; Google sign-in is disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	googleAuthHandler := handlers.NewGoogleAuthHandler(oauthService, userService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	userHandler := handlers.NewUserHandler(userService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", appConfig.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/google", googleAuthHandler.AuthURL)
	auth.GET("/google/callback", googleAuthHandler.Callback)
	auth.POST("/google/verify", googleAuthHandler.VerifyToken)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authHandler.Me)
	protected.GET("/auth/verify", authHandler.Verify)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/category/:category", expenseHandler.ListByCategory)
	expenses.GET("/date-range/:start/:end", expenseHandler.ListByDateRange)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	// Budget routes
	protected.GET("/budget", budgetHandler.Get)
	protected.PUT("/budget", budgetHandler.Update)

	// Settings routes
	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Update)

	// Profile routes
	protected.GET("/users/profile", userHandler.GetProfile)
	protected.PUT("/users/profile", userHandler.UpdateProfile)

	// Report routes
	protected.GET("/reports/dashboard", reportHandler.Dashboard)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminMiddleware(userService, services.IsAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.GET("/users/:id/expenses", adminHandler.GetUserExpenses)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.DELETE("/users/:id/expenses/:expenseID", adminHandler.DeleteUserExpense)

	log.Infof("Starting SpendWise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

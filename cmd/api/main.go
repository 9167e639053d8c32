package main

import (
	"fmt"
	"net/http"
	"os"

	"financas/internal/config"
	"financas/internal/database"
	"financas/internal/handlers"
	"financas/internal/logger"
	"financas/internal/middleware"
	"financas/internal/services"
	"financas/internal/validator"

	"github.com/gin-gonic/gin"
)

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
	defer dbManager.Close()

	// Run migrations and first-run seeding
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := dbManager.Seed(); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	configService := services.NewConfigService(db)
	reportService := services.NewReportService(db, configService)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	configHandler := handlers.NewConfigHandler(configService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/:id", accountHandler.GetByID)
	accounts.PUT("/:id/balance", accountHandler.SetBalance)
	accounts.DELETE("/:id", accountHandler.Delete)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.GetByID)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/expenses", reportHandler.Expenses)
	reports.GET("/categories", reportHandler.Categories)
	reports.GET("/summary", reportHandler.Summary)

	// Config routes
	v1.GET("/config", configHandler.Get)
	v1.PUT("/config", configHandler.Update)

	log.Infof("Starting Financas backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

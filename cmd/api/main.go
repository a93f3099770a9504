package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"equivest/internal/config"
	"equivest/internal/database"
	"equivest/internal/handlers"
	"equivest/internal/logger"
	"equivest/internal/middleware"
	"equivest/internal/services"
	"equivest/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "equivest/internal/docs" // Import swagger docs
)

// @title           Employee Equity Dashboard API
// @version         1.0
// @description     REST backend for an employee equity-compensation dashboard: stock grants, vesting schedules, balances, and transaction history.

// @host      localhost:8080
// @BasePath  /

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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed the demo dataset
	db := dbManager.DB()
	if err := database.Seed(db); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Initialize services
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db, userService, appConfig.MarketPrice)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	stockHandler := handlers.NewStockHandler(stockService, userService)

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

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	// Public auth routes
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/validate", authHandler.ValidateToken)

	// Protected auth routes
	authProtected := auth.Group("/")
	authProtected.Use(middleware.AuthMiddleware())
	authProtected.GET("/profile", authHandler.GetProfile)
	authProtected.POST("/logout", authHandler.Logout)

	// Stock routes
	stock := router.Group("/stock")
	stock.Use(middleware.AuthMiddleware())
	stock.GET("/dashboard", stockHandler.GetDashboard)
	stock.GET("/balance", stockHandler.GetBalance)
	stock.GET("/grants", stockHandler.GetGrants)
	stock.GET("/grants/:grantId", stockHandler.GetGrantDetails)
	stock.GET("/vesting", stockHandler.GetVestingSchedule)
	stock.GET("/transactions", stockHandler.GetTransactionHistory)

	log.Infof("Starting equity dashboard server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

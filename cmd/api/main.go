package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ledgerdash/internal/config"
	"ledgerdash/internal/database"
	"ledgerdash/internal/handlers"
	"ledgerdash/internal/logger"
	"ledgerdash/internal/middleware"
	"ledgerdash/internal/services"
	"ledgerdash/internal/sheets/google"
	"ledgerdash/internal/validator"

	_ "ledgerdash/internal/docs" // Import swagger docs
)

// @title           Ledgerdash API
// @version         1.0
// @description     Financial reporting API: spreadsheet-synced ledger with P&L and cashflow reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pipeline API key for the sync endpoint.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	reportService := services.NewReportService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	categoryService := services.NewCategoryService(db)
	investmentService := services.NewInvestmentService(db)

	sheetsClient, err := google.New(context.Background(), google.Options{
		SpreadsheetID:   appConfig.SheetSpreadsheetID,
		CredentialsJSON: appConfig.SheetCredentialsJSON,
		CredentialsFile: appConfig.SheetCredentialsFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	syncService := services.NewSyncService(db, sheetsClient, categoryService,
		appConfig.SheetIncomeRange, appConfig.SheetExpenseRange)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	syncHandler := handlers.NewSyncHandler(syncService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

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

	// API v1 group
	v1 := router.Group("/api/v1")

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/pnl", reportHandler.GetPnL)
	reports.GET("/cashflow", reportHandler.GetCashflow)

	// Ledger routes
	v1.GET("/income", incomeHandler.ListIncome)
	v1.GET("/income/:id", incomeHandler.GetIncome)
	v1.GET("/expenses", expenseHandler.ListExpenses)
	v1.GET("/expenses/:id", expenseHandler.GetExpense)
	v1.GET("/categories", categoryHandler.ListCategories)
	v1.GET("/investments", investmentHandler.ListInvestments)
	v1.GET("/investments/:id", investmentHandler.GetInvestment)

	// Sync pipeline, guarded by API key
	v1.POST("/sync", middleware.PipelineAuth(appConfig.SyncAPIKey), syncHandler.Sync)

	log.Infof("Starting Ledgerdash API server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

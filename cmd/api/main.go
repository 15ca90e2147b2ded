package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pocketledger/internal/app"
	"pocketledger/internal/config"
	"pocketledger/internal/database"
	"pocketledger/internal/insight"
	"pocketledger/internal/logger"
	"pocketledger/internal/router"
	"pocketledger/internal/services"
	"pocketledger/internal/store"
	"pocketledger/internal/validator"
)

// @title           PocketLedger API
// @version         1.0
// @description     PocketLedger records personal income and expenses, summarizes them over a time window, and asks a text-generation model for a short review.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the database only when it backs the store
	var db *gorm.DB
	if appConfig.StorageBackend == config.BackendSQLite {
		dbConfig, err := database.NewConfig(appConfig)
		if err != nil {
			return fmt.Errorf("failed to load database configuration: %w", err)
		}

		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()

		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		db = dbManager.DB()
	}

	backend, err := store.NewBackend(appConfig, db)
	if err != nil {
		return fmt.Errorf("failed to create storage backend: %w", err)
	}

	// Load the transaction history; an unreadable snapshot starts empty
	transactionStore := store.New(backend)
	transactionStore.Load(context.Background())
	log.Infof("Loaded %d transaction(s) from %s storage", transactionStore.Len(), appConfig.StorageBackend)

	var generator insight.Generator
	if appConfig.InsightConfigured() {
		client, err := insight.NewGeminiClient(context.Background(), appConfig.GeminiBaseURL, appConfig.GeminiAPIKey, appConfig.GeminiModel, &http.Client{})
		if err != nil {
			return fmt.Errorf("failed to create gemini client: %w", err)
		}
		generator = client
	} else {
		log.Warn("GEMINI_API_KEY not set, insight requests will not reach the API")
	}

	// Initialize services
	state := app.NewState(nil)
	analysisService := services.NewAnalysisService(transactionStore)
	transactionService := services.NewTransactionService(transactionStore, services.NewTransactionFactory(nil, nil))
	requester := insight.NewRequester(generator, appConfig.CurrencySymbol, appConfig.InsightTimeout)
	insightService := services.NewInsightService(analysisService, requester, state.Insight())

	validator.Register()

	engine := router.New(router.Dependencies{
		Transactions: transactionService,
		Analysis:     analysisService,
		Insight:      insightService,
		State:        state,
		RecentLimit:  appConfig.RecentLimit,
	})

	log.Infof("Starting PocketLedger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}

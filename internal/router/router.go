// Package router assembles the HTTP routes of the API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pocketledger/internal/app"
	_ "pocketledger/internal/docs" // Import swagger docs
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/handlers"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"
)

// Dependencies are the services and state the routes are served from.
type Dependencies struct {
	Transactions services.TransactionServicer
	Analysis     services.AnalysisServicer
	Insight      services.InsightServicer
	State        *app.State
	RecentLimit  int
}

// New returns a Gin engine with the middleware chain and all routes.
func New(deps Dependencies) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.RecentLimit)
	categoryHandler := handlers.NewCategoryHandler()
	analysisHandler := handlers.NewAnalysisHandler(deps.Analysis, deps.State)
	insightHandler := handlers.NewInsightHandler(deps.Insight, deps.State)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/recent", transactionHandler.RecentTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/categories", categoryHandler.GetCategories)

	analysis := v1.Group("/analysis")
	analysis.GET("", analysisHandler.GetAnalysis)
	analysis.GET("/filter", analysisHandler.GetFilter)
	analysis.PUT("/filter", analysisHandler.UpdateFilter)
	analysis.POST("/insight", insightHandler.RequestInsight)
	analysis.GET("/insight", insightHandler.GetInsight)
	analysis.DELETE("/insight", insightHandler.ResetInsight)

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	return router
}

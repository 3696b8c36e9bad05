package routes

import (
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MiddlewareConfig carries the settings the global middlewares need
type MiddlewareConfig struct {
	CORSOrigins  []string
	MaxBodyBytes int64
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	ocrHandler *handler.OCRHandler,
) {
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("/:id/credits", userHandler.UpdateCredits)
			users.GET("/:id/transactions", userHandler.ListTransactions)
			users.GET("/:id/usage", userHandler.GetUsage)
			users.GET("/:id/processing-logs", ocrHandler.ListProcessingLogs)
		}

		api.POST("/detect-regions", ocrHandler.DetectRegions)
		api.POST("/extract-text", ocrHandler.ExtractText)
		api.POST("/process-document", ocrHandler.ProcessDocument)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, cfg MiddlewareConfig) {
	// request id first so recovery and access logs can see it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
}

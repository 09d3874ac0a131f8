package http

import (
	"github.com/gin-gonic/gin"

	"github.com/autoquote/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		quotes := v1.Group("/quotes")
		{
			quotes.GET("", handler.ListItems)
			quotes.POST("", handler.AddItems)
			quotes.DELETE("", handler.ClearSession)
			quotes.POST("/extract", handler.ExtractQuotes)
			quotes.POST("/select-winners", handler.SelectWinners)
			quotes.GET("/comparison", handler.Comparison)
			quotes.GET("/summary", handler.Summary)
			quotes.GET("/export", handler.ExportWorkbook)
			quotes.GET("/export/supplier/:supplier", handler.ExportSupplierOrder)
			quotes.POST("/:id/toggle", handler.ToggleSelection)
			quotes.DELETE("/:id", handler.RemoveItem)
		}
	}

	return router
}

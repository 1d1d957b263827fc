package http

import (
	"github.com/gin-gonic/gin"

	"github.com/digitalrebelz/supermarket-price-compare/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/retailers", handler.ListRetailers)
		v1.POST("/search", handler.SearchProducts)
		v1.POST("/compare", handler.CompareShoppingList)
		v1.POST("/items/savings", handler.ItemSavings)
	}

	return router
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
)

// SystemRouteConfig holds dependencies for operational endpoints.
type SystemRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	MetricsHandler http.Handler
	EnableSwagger  bool
}

// SetupSystemRoutes configures health, metrics and API documentation routes.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.Check)
	engine.GET("/metrics", gin.WrapH(cfg.MetricsHandler))

	if cfg.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

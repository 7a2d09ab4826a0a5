package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	_ "github.com/orris-inc/helpdesk/docs"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/routes"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	*Container
}

// NewRouter builds the container and registers every route.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	r := &Router{Container: c}
	r.SetupRoutes()
	return r, nil
}

// SetupRoutes installs the global middleware chain and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(
		middleware.RequestID(),
		middleware.Recovery(r.log),
		middleware.RequestLogger(r.log),
		middleware.CORS(r.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
		middleware.Metrics(r.metrics),
	)

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, errors.ErrorTypeNotFound, "route not found")
	})

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		HealthHandler:  r.hdlrs.healthHandler,
		MetricsHandler: r.metrics.Handler(),
		EnableSwagger:  r.cfg.Server.Mode != gin.ReleaseMode,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:          r.hdlrs.authHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimitMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		TicketHandler:        r.hdlrs.adminTicketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// NewServer returns an http.Server serving the router with the configured
// timeouts.
func (r *Router) NewServer() *http.Server {
	return &http.Server{
		Addr:         r.cfg.Server.GetAddr(),
		Handler:      r.engine,
		ReadTimeout:  r.cfg.Server.ReadTimeout(),
		WriteTimeout: r.cfg.Server.WriteTimeout(),
	}
}

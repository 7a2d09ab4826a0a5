package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/domain/permission"
	adminHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/admin"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	TicketHandler        *adminHandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the /admin group.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.PUT("/tickets/:ticket_id/status",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceTicketStatus, permission.ActionUpdate),
			cfg.TicketHandler.UpdateStatus)
	}
}

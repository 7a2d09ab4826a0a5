package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/domain/permission"
	ticketHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler        *ticketHandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes configures routes shared by customers and admins. Record
// level visibility is decided by the use cases.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	perm := cfg.PermissionMiddleware

	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			cfg.TicketHandler.CreateTicket)
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			cfg.TicketHandler.ListTickets)
		tickets.GET("/:ticket_id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			cfg.TicketHandler.GetTicket)
		tickets.GET("/:ticket_id/replies",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			cfg.TicketHandler.ListReplies)
		tickets.POST("/:ticket_id/replies",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionReply),
			cfg.TicketHandler.CreateReply)
	}
}

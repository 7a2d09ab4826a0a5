package http

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	adminHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/admin"
	ticketHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler        *handlers.AuthHandler
	healthHandler      *handlers.HealthHandler
	ticketHandler      *ticketHandlers.TicketHandler
	adminTicketHandler *adminHandlers.TicketHandler
}

func newHandlers(ucs *allUseCases, cfg *config.Config, db *gorm.DB, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.signup, ucs.login, ucs.getUser, log),
		healthHandler: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicket,
			ucs.listTickets,
			ucs.getTicket,
			ucs.listReplies,
			ucs.createReply,
			cfg.Pagination,
			log,
		),
		adminTicketHandler: adminHandlers.NewTicketHandler(ucs.updateStatus, log),
	}
}

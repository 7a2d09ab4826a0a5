package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Caller   Caller
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, renderer MarkdownRenderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, query.Caller, query.TicketID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t, uc.renderer.Render), nil
}

// loadVisibleTicket fetches a ticket and applies the view rule. A missing
// ticket is reported as NOT_FOUND before any access decision is made.
func loadVisibleTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, caller Caller, ticketID uint) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err := ticket.CanView(caller.Role, caller.ID, t.UserID()); err != nil {
		log.Warnw("ticket access denied", "ticket_id", ticketID, "user_id", caller.ID)
		return nil, err
	}
	return t, nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Caller      Caller
	Subject     string
	Description string
	Priority    string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	publisher  events.EventPublisher
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		publisher:  publisher,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if err := ticket.CanCreate(cmd.Caller.Role); err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.Caller.ID, cmd.Subject, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "user_id", cmd.Caller.ID, "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "user_id", t.UserID(), "priority", t.Priority())

	publishAfterCommit(ctx, uc.publisher, uc.logger, ticket.NewTicketCreatedEvent(t))

	return dto.ToTicketDTO(t, uc.renderer.Render), nil
}

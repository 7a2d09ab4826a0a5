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

type UpdateStatusCommand struct {
	Caller   Caller
	TicketID uint
	Status   string
}

// UpdateStatusUseCase moves a ticket along its lifecycle on behalf of an
// admin. The role is checked before anything else, so a customer is refused
// with FORBIDDEN whether or not the requested edge exists.
type UpdateStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	if err := ticket.CanUpdateStatus(cmd.Caller.Role); err != nil {
		return nil, err
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		t       *ticket.Ticket
		from    vo.TicketStatus
		changed bool
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		from = t.Status()
		changed, err = t.ChangeStatus(newStatus)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return uc.ticketRepo.UpdateStatus(txCtx, t)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	if changed {
		uc.logger.Infow("ticket status changed",
			"ticket_id", t.ID(),
			"from", from,
			"to", t.Status(),
			"admin_id", cmd.Caller.ID,
		)
		publishAfterCommit(ctx, uc.publisher, uc.logger, ticket.NewStatusChangedEvent(t, from, cmd.Caller.ID))
	}

	return &dto.StatusDTO{ID: t.ID(), Status: t.Status().String()}, nil
}

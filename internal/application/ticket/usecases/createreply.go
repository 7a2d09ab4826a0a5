package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type CreateReplyCommand struct {
	Caller   Caller
	TicketID uint
	Message  string
}

type CreateReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	txManager  TransactionManager
	publisher  events.EventPublisher
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewCreateReplyUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *CreateReplyUseCase {
	return &CreateReplyUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		txManager:  txManager,
		publisher:  publisher,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateReplyUseCase) Execute(ctx context.Context, cmd CreateReplyCommand) (*dto.ReplyDTO, error) {
	var (
		t     *ticket.Ticket
		reply *ticket.Reply
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The row lock keeps a concurrent close from slipping in between the
		// status check and the insert.
		var err error
		t, err = uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := ticket.CanReply(cmd.Caller.Role, cmd.Caller.ID, t.UserID(), t.Status()); err != nil {
			return err
		}

		reply, err = ticket.NewReply(t.ID(), cmd.Caller.ID, cmd.Message)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.replyRepo.Create(txCtx, reply)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create reply", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	uc.logger.Infow("reply created", "ticket_id", t.ID(), "reply_id", reply.ID(), "author_id", reply.AuthorID())

	publishAfterCommit(ctx, uc.publisher, uc.logger, ticket.NewReplyCreatedEvent(t, reply))

	return dto.ToReplyDTO(reply, uc.renderer.Render), nil
}

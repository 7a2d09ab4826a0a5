// Package notification emails ticket owners about support activity on their
// tickets. Delivery is best effort and runs after the change is committed.
package notification

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// Mailer delivers the owner-facing messages.
type Mailer interface {
	SendStatusChanged(ctx context.Context, to string, ticketID uint, subject, from, status string) error
	SendAdminReply(ctx context.Context, to string, ticketID uint, subject, message string) error
}

type TicketNotificationHandler struct {
	userRepo user.Repository
	mailer   Mailer
	logger   logger.Interface
}

func NewTicketNotificationHandler(userRepo user.Repository, mailer Mailer, logger logger.Interface) *TicketNotificationHandler {
	return &TicketNotificationHandler{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// Register subscribes the handler to the events it reacts to.
func (h *TicketNotificationHandler) Register(d *events.Dispatcher) {
	d.Subscribe(ticket.EventStatusChanged, events.EventHandlerFunc(h.handleStatusChanged))
	d.Subscribe(ticket.EventReplyCreated, events.EventHandlerFunc(h.handleReplyCreated))
}

func (h *TicketNotificationHandler) handleStatusChanged(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(ticket.StatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}

	owner, err := h.lookup(ctx, e.OwnerID)
	if err != nil || owner == nil {
		return err
	}

	if err := h.mailer.SendStatusChanged(ctx, owner.Email(), e.AggregateID, e.Subject, e.From.String(), e.To.String()); err != nil {
		return fmt.Errorf("notify owner of status change: %w", err)
	}

	h.logger.Infow("status change notification sent",
		"ticket_id", e.AggregateID,
		"status", e.To,
		"recipient", utils.MaskEmail(owner.Email()))
	return nil
}

func (h *TicketNotificationHandler) handleReplyCreated(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(ticket.ReplyCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}
	if e.AuthorID == e.OwnerID {
		return nil
	}

	author, err := h.lookup(ctx, e.AuthorID)
	if err != nil || author == nil || !author.IsAdmin() {
		return err
	}

	owner, err := h.lookup(ctx, e.OwnerID)
	if err != nil || owner == nil {
		return err
	}

	if err := h.mailer.SendAdminReply(ctx, owner.Email(), e.AggregateID, e.Subject, e.Message); err != nil {
		return fmt.Errorf("notify owner of reply: %w", err)
	}

	h.logger.Infow("reply notification sent",
		"ticket_id", e.AggregateID,
		"reply_id", e.ReplyID,
		"recipient", utils.MaskEmail(owner.Email()))
	return nil
}

// lookup returns (nil, nil) for a user that no longer exists.
func (h *TicketNotificationHandler) lookup(ctx context.Context, id uint) (*user.User, error) {
	u, err := h.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	if u == nil {
		h.logger.Warnw("notification recipient not found", "user_id", id)
	}
	return u, nil
}

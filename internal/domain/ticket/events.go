package ticket

import (
	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const (
	EventTicketCreated = "ticket.created"
	EventStatusChanged = "ticket.status_changed"
	EventReplyCreated  = "ticket.reply_created"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	OwnerID  uint        `json:"owner_id"`
	Priority vo.Priority `json:"priority"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{AggregateID: t.ID(), EventType: EventTicketCreated, OccurredAt: biztime.NowUTC()},
		OwnerID:   t.UserID(),
		Priority:  t.Priority(),
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	OwnerID   uint            `json:"owner_id"`
	Subject   string          `json:"subject"`
	From      vo.TicketStatus `json:"from"`
	To        vo.TicketStatus `json:"to"`
	ChangedBy uint            `json:"changed_by"`
}

func NewStatusChangedEvent(t *Ticket, from vo.TicketStatus, changedBy uint) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: events.BaseEvent{AggregateID: t.ID(), EventType: EventStatusChanged, OccurredAt: biztime.NowUTC()},
		OwnerID:   t.UserID(),
		Subject:   t.Subject(),
		From:      from,
		To:        t.Status(),
		ChangedBy: changedBy,
	}
}

type ReplyCreatedEvent struct {
	events.BaseEvent
	ReplyID  uint   `json:"reply_id"`
	OwnerID  uint   `json:"owner_id"`
	Subject  string `json:"subject"`
	AuthorID uint   `json:"author_id"`
	Message  string `json:"message"`
}

func NewReplyCreatedEvent(t *Ticket, r *Reply) ReplyCreatedEvent {
	return ReplyCreatedEvent{
		BaseEvent: events.BaseEvent{AggregateID: t.ID(), EventType: EventReplyCreated, OccurredAt: biztime.NowUTC()},
		ReplyID:   r.ID(),
		OwnerID:   t.UserID(),
		Subject:   t.Subject(),
		AuthorID:  r.AuthorID(),
		Message:   r.Message(),
	}
}

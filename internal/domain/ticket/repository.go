package ticket

import (
	"context"
	"time"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. Lookups return (nil, nil) when the
// ticket does not exist.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate loads the ticket with a row lock held until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	UpdateStatus(ctx context.Context, ticket *Ticket) error
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter narrows a ticket listing. Set fields are ANDed together.
type TicketFilter struct {
	OwnerID     *uint
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

type ReplyRepository interface {
	Create(ctx context.Context, reply *Reply) error
	// ListByTicket returns one page of the thread in (created_at, id) order
	// and the thread's total size.
	ListByTicket(ctx context.Context, ticketID uint, page, pageSize int) ([]*Reply, int64, error)
}

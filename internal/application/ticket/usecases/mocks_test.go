package usecases

import (
	"context"
	"html"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

type mockTicketRepository struct {
	CreateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	UpdateStatusFunc     func(ctx context.Context, t *ticket.Ticket) error
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, ticketID)
	}
	return m.GetByID(ctx, ticketID)
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockReplyRepository struct {
	CreateFunc       func(ctx context.Context, r *ticket.Reply) error
	ListByTicketFunc func(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.Reply, int64, error)
}

func (m *mockReplyRepository) Create(ctx context.Context, r *ticket.Reply) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockReplyRepository) ListByTicket(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.Reply, int64, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, page, pageSize)
	}
	return nil, 0, nil
}

// mockTxManager runs the callback inline and records how often it was used.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockPublisher struct {
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) PublishAll(ctx context.Context, evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return m.err
}

type escapeRenderer struct{}

func (escapeRenderer) Render(markdown string) string { return "<p>" + html.EscapeString(markdown) + "</p>" }

var (
	customer      = Caller{ID: 1, Role: authorization.RoleUser}
	otherCustomer = Caller{ID: 2, Role: authorization.RoleUser}
	admin         = Caller{ID: 9, Role: authorization.RoleAdmin}
)

func storedTicket(t *testing.T, id, ownerID uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(id, ownerID, "Printer on fire", "The office printer is on fire again.",
		status, vo.PriorityMedium, now, now)
	require.NoError(t, err)
	return tk
}

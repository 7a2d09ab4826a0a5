package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

// Caller identifies the authenticated account a request acts for.
type Caller struct {
	ID   uint
	Role authorization.UserRole
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MarkdownRenderer interface {
	Render(markdown string) string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListRepliesExecutor interface {
	Execute(ctx context.Context, query ListRepliesQuery) (*ListRepliesResult, error)
}

type CreateReplyExecutor interface {
	Execute(ctx context.Context, cmd CreateReplyCommand) (*dto.ReplyDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error)
}

package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ListRepliesQuery struct {
	Caller   Caller
	TicketID uint
	Page     int
	PageSize int
}

type ListRepliesResult struct {
	Items    []*dto.ReplyDTO
	Total    int64
	Page     int
	PageSize int
}

type ListRepliesUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewListRepliesUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *ListRepliesUseCase {
	return &ListRepliesUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *ListRepliesUseCase) Execute(ctx context.Context, query ListRepliesQuery) (*ListRepliesResult, error) {
	if query.Page < 1 || query.PageSize < 1 {
		return nil, errors.NewValidationError("page and page_size must be positive")
	}

	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, query.Caller, query.TicketID)
	if err != nil {
		return nil, err
	}

	replies, total, err := uc.replyRepo.ListByTicket(ctx, t.ID(), query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list replies", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return &ListRepliesResult{
		Items:    dto.ToReplyDTOs(replies, uc.renderer.Render),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

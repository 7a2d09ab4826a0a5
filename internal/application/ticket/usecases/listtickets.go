package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// ListTicketsQuery carries already-parsed filters. Empty Status and Priority
// mean "any"; nil dates leave that side of the range open.
type ListTicketsQuery struct {
	Caller      Caller
	Status      string
	Priority    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

type ListTicketsResult struct {
	Items    []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, renderer MarkdownRenderer, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Caller.ID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Items:    dto.ToTicketDTOs(tickets, uc.renderer.Render),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		CreatedFrom: query.CreatedFrom,
		CreatedTo:   query.CreatedTo,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if query.Page < 1 || query.PageSize < 1 {
		return filter, errors.NewValidationError("page and page_size must be positive")
	}

	// Customers only ever see their own tickets, whatever else was asked for.
	if !query.Caller.Role.IsAdmin() {
		ownerID := query.Caller.ID
		filter.OwnerID = &ownerID
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if query.CreatedFrom != nil && query.CreatedTo != nil && query.CreatedFrom.After(*query.CreatedTo) {
		return filter, errors.NewValidationError("created_from must not be after created_to")
	}

	return filter, nil
}

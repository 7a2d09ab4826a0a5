package dto

import (
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

// CreateTicketRequest is the body of POST /tickets
type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200" example:"Cannot log in"`
	Description string `json:"description" binding:"required,min=10,max=5000" example:"The login page keeps spinning after I submit."`
	Priority    string `json:"priority" binding:"required,ticket_priority" example:"MEDIUM" enums:"LOW,MEDIUM,HIGH"`
}

// CreateReplyRequest is the body of POST /tickets/{id}/replies
type CreateReplyRequest struct {
	Message string `json:"message" binding:"required,max=5000" example:"We are looking into it."`
}

// UpdateStatusRequest is the body of PUT /admin/tickets/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,ticket_status" example:"IN_PROGRESS" enums:"OPEN,IN_PROGRESS,RESOLVED,CLOSED"`
}

// ListTicketsRequest carries the raw query of GET /tickets. Dates are parsed
// by the handler so both RFC 3339 and YYYY-MM-DD are accepted.
type ListTicketsRequest struct {
	Status      string `form:"status" binding:"omitempty,ticket_status"`
	Priority    string `form:"priority" binding:"omitempty,ticket_priority"`
	CreatedFrom string `form:"created_from"`
	CreatedTo   string `form:"created_to"`
}

type TicketDTO struct {
	ID              uint      `json:"id" example:"1"`
	UserID          uint      `json:"user_id" example:"1"`
	Subject         string    `json:"subject"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	Status          string    `json:"status" example:"OPEN"`
	Priority        string    `json:"priority" example:"MEDIUM"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReplyDTO struct {
	ID          uint      `json:"id" example:"1"`
	TicketID    uint      `json:"ticket_id" example:"1"`
	AuthorID    uint      `json:"author_id" example:"2"`
	Message     string    `json:"message"`
	MessageHTML string    `json:"message_html"`
	CreatedAt   time.Time `json:"created_at"`
}

type StatusDTO struct {
	ID     uint   `json:"id" example:"1"`
	Status string `json:"status" example:"IN_PROGRESS"`
}

// RenderFunc turns Markdown source into safe HTML.
type RenderFunc func(markdown string) string

func ToTicketDTO(t *ticket.Ticket, render RenderFunc) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:              t.ID(),
		UserID:          t.UserID(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		DescriptionHTML: render(t.Description()),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket, render RenderFunc) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t, render))
	}
	return out
}

func ToReplyDTO(r *ticket.Reply, render RenderFunc) *ReplyDTO {
	if r == nil {
		return nil
	}
	return &ReplyDTO{
		ID:          r.ID(),
		TicketID:    r.TicketID(),
		AuthorID:    r.AuthorID(),
		Message:     r.Message(),
		MessageHTML: render(r.Message()),
		CreatedAt:   r.CreatedAt(),
	}
}

func ToReplyDTOs(replies []*ticket.Reply, render RenderFunc) []*ReplyDTO {
	out := make([]*ReplyDTO, 0, len(replies))
	for _, r := range replies {
		out = append(out, ToReplyDTO(r, render))
	}
	return out
}

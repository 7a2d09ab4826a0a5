// Package helpdesk provides a Go SDK for the Helpdesk ticketing API.
package helpdesk

import (
	"fmt"
	"time"
)

// Ticket statuses.
const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
)

// Ticket priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// User is an account as returned by signup and /auth/me.
type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Ticket is a support request.
type Ticket struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Subject         string    `json:"subject"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Reply is one message in a ticket thread.
type Reply struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    uint      `json:"author_id"`
	Message     string    `json:"message"`
	MessageHTML string    `json:"message_html"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketStatus is the result of a status change.
type TicketStatus struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// CreateTicketRequest is the body of a new ticket.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ListTicketsOptions narrows a ticket listing. Zero values are omitted.
type ListTicketsOptions struct {
	Page        int
	PageSize    int
	Status      string
	Priority    string
	CreatedFrom string // RFC 3339 timestamp or YYYY-MM-DD
	CreatedTo   string
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("helpdesk: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("helpdesk: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

package helpdesk

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-Id"

// Client is the Helpdesk API client. It is safe for concurrent use; Login
// stores the access token for subsequent calls.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithToken sets an access token obtained elsewhere.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		baseURL := c.http.BaseURL
		c.http = resty.NewWithClient(hc).SetBaseURL(baseURL)
	}
}

// NewClient creates a new Helpdesk API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "https://helpdesk.example.com")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetHeader("Accept", "application/json")
	return c
}

// Token returns the stored access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup creates a customer account.
func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	var user User
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, nil, &user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &user, nil
}

// Login exchanges credentials for an access token and keeps it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	var token Token
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, nil, &token); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.mu.Lock()
	c.token = token.AccessToken
	c.mu.Unlock()
	return &token, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &user, nil
}

// CreateTicket opens a ticket. Only customer accounts may do so.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*Ticket, error) {
	var ticket Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets", req, nil, &ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &ticket, nil
}

// ListTickets lists the tickets visible to the caller, newest first.
func (c *Client) ListTickets(ctx context.Context, opts ListTicketsOptions) (*Page[Ticket], error) {
	query := map[string]string{}
	setInt(query, "page", opts.Page)
	setInt(query, "page_size", opts.PageSize)
	setString(query, "status", opts.Status)
	setString(query, "priority", opts.Priority)
	setString(query, "created_from", opts.CreatedFrom)
	setString(query, "created_to", opts.CreatedTo)

	var page Page[Ticket]
	if err := c.do(ctx, http.MethodGet, "/tickets", nil, query, &page); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return &page, nil
}

// GetTicket fetches one ticket.
func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", ticketID), nil, nil, &ticket); err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// ListReplies lists a ticket's thread, oldest first. Zero page values use the
// server defaults.
func (c *Client) ListReplies(ctx context.Context, ticketID uint, page, pageSize int) (*Page[Reply], error) {
	query := map[string]string{}
	setInt(query, "page", page)
	setInt(query, "page_size", pageSize)

	var out Page[Reply]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/replies", ticketID), nil, query, &out); err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return &out, nil
}

// Reply adds a message to a ticket thread.
func (c *Client) Reply(ctx context.Context, ticketID uint, message string) (*Reply, error) {
	var reply Reply
	body := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/replies", ticketID), body, nil, &reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	return &reply, nil
}

// UpdateStatus moves a ticket along its lifecycle. Requires an admin token.
func (c *Client) UpdateStatus(ctx context.Context, ticketID uint, status string) (*TicketStatus, error) {
	var out TicketStatus
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/tickets/%d/status", ticketID), body, nil, &out); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return &out, nil
}

// do sends the request and decodes either result or the error envelope.
func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string, result any) error {
	var envelope errorEnvelope
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&envelope)

	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	if resp.IsError() {
		apiErr := envelope.Error
		apiErr.StatusCode = resp.StatusCode()
		apiErr.RequestID = resp.Header().Get(requestIDHeader)
		return &apiErr
	}
	return nil
}

func setInt(q map[string]string, key string, v int) {
	if v != 0 {
		q[key] = strconv.Itoa(v)
	}
}

func setString(q map[string]string, key, v string) {
	if v != "" {
		q[key] = v
	}
}

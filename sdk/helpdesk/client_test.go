package helpdesk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_LoginStoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "tok-123",
			"token_type":   "Bearer",
			"role":         "USER",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "email": "alice@example.com", "role": "USER"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)
	token, err := c.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)
	assert.EqualValues(t, 3600, token.ExpiresIn)
	assert.Equal(t, "tok-123", c.Token())

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(7), me.ID)
	assert.Equal(t, "USER", me.Role)
}

func TestClient_ListTicketsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "OPEN", q.Get("status"))
		assert.Equal(t, "2026-01-31", q.Get("created_to"))
		assert.False(t, q.Has("page_size"))
		assert.False(t, q.Has("priority"))

		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{
				{"id": 11, "user_id": 7, "subject": "Printer", "status": "OPEN", "priority": "LOW"},
			},
			"page":      2,
			"page_size": 10,
			"total":     11,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("tok"))
	page, err := c.ListTickets(context.Background(), ListTicketsOptions{
		Page:      2,
		Status:    StatusOpen,
		CreatedTo: "2026-01-31",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Printer", page.Items[0].Subject)
	assert.EqualValues(t, 11, page.Total)
}

func TestClient_Endpoints(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		respond    any
		call       func(c *Client) (any, error)
		wantBody   map[string]string
		assertResp func(t *testing.T, got any)
	}{
		{
			name:    "signup",
			method:  http.MethodPost,
			path:    "/auth/signup",
			respond: map[string]any{"id": 3, "email": "bob@example.com", "role": "USER"},
			call: func(c *Client) (any, error) {
				return c.Signup(context.Background(), "bob@example.com", "password123")
			},
			wantBody: map[string]string{"email": "bob@example.com", "password": "password123"},
			assertResp: func(t *testing.T, got any) {
				assert.Equal(t, "bob@example.com", got.(*User).Email)
			},
		},
		{
			name:    "create ticket",
			method:  http.MethodPost,
			path:    "/tickets",
			respond: map[string]any{"id": 5, "subject": "VPN down", "status": "OPEN", "priority": "HIGH"},
			call: func(c *Client) (any, error) {
				return c.CreateTicket(context.Background(), CreateTicketRequest{
					Subject: "VPN down", Description: "Cannot reach the VPN since noon", Priority: PriorityHigh,
				})
			},
			wantBody: map[string]string{"subject": "VPN down", "description": "Cannot reach the VPN since noon", "priority": "HIGH"},
			assertResp: func(t *testing.T, got any) {
				assert.Equal(t, StatusOpen, got.(*Ticket).Status)
			},
		},
		{
			name:    "get ticket",
			method:  http.MethodGet,
			path:    "/tickets/5",
			respond: map[string]any{"id": 5, "subject": "VPN down"},
			call: func(c *Client) (any, error) {
				return c.GetTicket(context.Background(), 5)
			},
			assertResp: func(t *testing.T, got any) {
				assert.Equal(t, uint(5), got.(*Ticket).ID)
			},
		},
		{
			name:    "list replies",
			method:  http.MethodGet,
			path:    "/tickets/5/replies",
			respond: map[string]any{"items": []map[string]any{{"id": 1, "ticket_id": 5, "message": "hi"}}, "page": 1, "page_size": 50, "total": 1},
			call: func(c *Client) (any, error) {
				return c.ListReplies(context.Background(), 5, 0, 0)
			},
			assertResp: func(t *testing.T, got any) {
				assert.Len(t, got.(*Page[Reply]).Items, 1)
			},
		},
		{
			name:    "reply",
			method:  http.MethodPost,
			path:    "/tickets/5/replies",
			respond: map[string]any{"id": 2, "ticket_id": 5, "author_id": 1, "message": "On it"},
			call: func(c *Client) (any, error) {
				return c.Reply(context.Background(), 5, "On it")
			},
			wantBody: map[string]string{"message": "On it"},
			assertResp: func(t *testing.T, got any) {
				assert.Equal(t, "On it", got.(*Reply).Message)
			},
		},
		{
			name:    "update status",
			method:  http.MethodPut,
			path:    "/admin/tickets/5/status",
			respond: map[string]any{"id": 5, "status": "IN_PROGRESS"},
			call: func(c *Client) (any, error) {
				return c.UpdateStatus(context.Background(), 5, StatusInProgress)
			},
			wantBody: map[string]string{"status": "IN_PROGRESS"},
			assertResp: func(t *testing.T, got any) {
				assert.Equal(t, StatusInProgress, got.(*TicketStatus).Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				if tt.wantBody != nil {
					var body map[string]string
					require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
					assert.Equal(t, tt.wantBody, body)
				}
				writeJSON(w, http.StatusOK, tt.respond)
			}))
			defer srv.Close()

			got, err := tt.call(NewClient(srv.URL, WithToken("tok")))
			require.NoError(t, err)
			tt.assertResp(t, got)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-42")
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": map[string]any{"code": "FORBIDDEN", "message": "not allowed"},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetTicket(context.Background(), 9)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, "not allowed", apiErr.Message)
	assert.Equal(t, "req-42", apiErr.RequestID)
	assert.Contains(t, err.Error(), "get ticket")
}

func TestClient_LoginFailureKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"code": "UNAUTHORIZED", "message": "invalid credentials"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("old"))
	_, err := c.Login(context.Background(), "a@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "old", c.Token())
}

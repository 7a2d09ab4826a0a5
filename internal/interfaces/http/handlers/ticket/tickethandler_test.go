package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// =====================================================================
// Mock executors
// =====================================================================

type mockGetTicket struct{ mock.Mock }

func (m *mockGetTicket) Execute(ctx context.Context, q usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*dto.TicketDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockListReplies struct{ mock.Mock }

func (m *mockListReplies) Execute(ctx context.Context, q usecases.ListRepliesQuery) (*usecases.ListRepliesResult, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*usecases.ListRepliesResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCreateReply struct{ mock.Mock }

func (m *mockCreateReply) Execute(ctx context.Context, cmd usecases.CreateReplyCommand) (*dto.ReplyDTO, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*dto.ReplyDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

var testPagination = config.PaginationConfig{
	TicketsDefaultPageSize: 10,
	TicketsMaxPageSize:     50,
	RepliesDefaultPageSize: 50,
	RepliesMaxPageSize:     100,
}

func newTestHandler(get usecases.GetTicketExecutor, list usecases.ListRepliesExecutor, reply usecases.CreateReplyExecutor) *TicketHandler {
	return NewTicketHandler(nil, nil, get, list, reply, testPagination, logger.NewNop())
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket(t *testing.T) {
	customer := usecases.Caller{ID: 7, Role: authorization.RoleUser}

	tests := []struct {
		name       string
		ticketID   string
		auth       bool
		setup      func(m *mockGetTicket)
		wantStatus int
		wantCode   string
	}{
		{
			name:     "owner reads ticket",
			ticketID: "3",
			auth:     true,
			setup: func(m *mockGetTicket) {
				m.On("Execute", mock.Anything, usecases.GetTicketQuery{Caller: customer, TicketID: 3}).
					Return(&dto.TicketDTO{ID: 3, UserID: 7, Status: "OPEN"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric id",
			ticketID:   "abc",
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrorTypeValidation),
		},
		{
			name:       "zero id",
			ticketID:   "0",
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrorTypeValidation),
		},
		{
			name:       "no caller in context",
			ticketID:   "3",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(errors.ErrorTypeUnauthorized),
		},
		{
			name:     "forbidden passes through",
			ticketID: "4",
			auth:     true,
			setup: func(m *mockGetTicket) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, errors.NewForbiddenError("you cannot view this ticket"))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   string(errors.ErrorTypeForbidden),
		},
		{
			name:     "missing ticket",
			ticketID: "99",
			auth:     true,
			setup: func(m *mockGetTicket) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, errors.NewNotFoundError("ticket not found"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   string(errors.ErrorTypeNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockGetTicket{}
			if tt.setup != nil {
				tt.setup(m)
			}
			h := newTestHandler(m, nil, nil)

			c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+tt.ticketID, nil)
			testutil.SetURLParam(c, "ticket_id", tt.ticketID)
			if tt.auth {
				testutil.SetAuthContext(c, customer.ID, customer.Role)
			}

			h.GetTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, testutil.ErrorCode(w))
			}
			m.AssertExpectations(t)
		})
	}
}

// =====================================================================
// ListReplies
// =====================================================================

func TestTicketHandler_ListReplies(t *testing.T) {
	admin := usecases.Caller{ID: 1, Role: authorization.RoleAdmin}

	t.Run("defaults applied", func(t *testing.T) {
		m := &mockListReplies{}
		m.On("Execute", mock.Anything, usecases.ListRepliesQuery{Caller: admin, TicketID: 5, Page: 1, PageSize: 50}).
			Return(&usecases.ListRepliesResult{
				Items:    []*dto.ReplyDTO{{ID: 1, TicketID: 5, Message: "hello"}},
				Total:    1,
				Page:     1,
				PageSize: 50,
			}, nil)
		h := newTestHandler(nil, m, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/5/replies", nil)
		testutil.SetURLParam(c, "ticket_id", "5")
		testutil.SetAuthContext(c, admin.ID, admin.Role)

		h.ListReplies(c)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Items    []dto.ReplyDTO `json:"items"`
			Page     int            `json:"page"`
			PageSize int            `json:"page_size"`
			Total    int64          `json:"total"`
		}
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Len(t, body.Items, 1)
		assert.Equal(t, 50, body.PageSize)
		assert.EqualValues(t, 1, body.Total)
		m.AssertExpectations(t)
	})

	t.Run("page size above max rejected", func(t *testing.T) {
		m := &mockListReplies{}
		h := newTestHandler(nil, m, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/5/replies", nil)
		testutil.SetURLParam(c, "ticket_id", "5")
		testutil.SetQueryParams(c, map[string]string{"page_size": "101"})
		testutil.SetAuthContext(c, admin.ID, admin.Role)

		h.ListReplies(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(errors.ErrorTypeValidation), testutil.ErrorCode(w))
		m.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

// =====================================================================
// CreateReply
// =====================================================================

func TestTicketHandler_CreateReply(t *testing.T) {
	customer := usecases.Caller{ID: 7, Role: authorization.RoleUser}

	tests := []struct {
		name       string
		body       any
		setup      func(m *mockCreateReply)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: map[string]string{"message": "Still broken"},
			setup: func(m *mockCreateReply) {
				m.On("Execute", mock.Anything, usecases.CreateReplyCommand{Caller: customer, TicketID: 2, Message: "Still broken"}).
					Return(&dto.ReplyDTO{ID: 9, TicketID: 2, AuthorID: 7, Message: "Still broken"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing message",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrorTypeValidation),
		},
		{
			name:       "malformed json",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrorTypeValidation),
		},
		{
			name: "closed ticket",
			body: map[string]string{"message": "one more thing"},
			setup: func(m *mockCreateReply) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, errors.NewValidationError("ticket is closed"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrorTypeValidation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockCreateReply{}
			if tt.setup != nil {
				tt.setup(m)
			}
			h := newTestHandler(nil, nil, m)

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/2/replies", tt.body)
			testutil.SetURLParam(c, "ticket_id", "2")
			testutil.SetAuthContext(c, customer.ID, customer.Role)

			h.CreateReply(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, testutil.ErrorCode(w))
			}
			m.AssertExpectations(t)
		})
	}
}

func TestTicketHandler_CreateTicket_Unauthenticated(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{"subject": "x"})
	h.CreateTicket(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(errors.ErrorTypeUnauthorized), testutil.ErrorCode(w))
}

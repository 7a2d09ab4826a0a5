package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(100)
		},
	}
	tx := &mockTxManager{}
	pub := &mockPublisher{}

	uc := NewCreateTicketUseCase(repo, tx, pub, escapeRenderer{}, logger.NewNop())
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Caller:      customer,
		Subject:     "  Sub 1 ",
		Description: "Something **broke** badly",
		Priority:    "MEDIUM",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, customer.ID, result.UserID)
	assert.Equal(t, "Sub 1", result.Subject)
	assert.Equal(t, "OPEN", result.Status)
	assert.Equal(t, "MEDIUM", result.Priority)
	assert.Equal(t, "<p>Something **broke** badly</p>", result.DescriptionHTML)

	require.NotNil(t, saved)
	assert.Equal(t, vo.StatusOpen, saved.Status())
	assert.Equal(t, 1, tx.calls)

	require.Len(t, pub.published, 1)
	assert.Equal(t, ticket.EventTicketCreated, pub.published[0].GetEventType())
	assert.Equal(t, uint(100), pub.published[0].GetAggregateID())
}

func TestCreateTicketUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		cmd       CreateTicketCommand
		checkType func(error) bool
	}{
		{
			name:      "admin cannot create",
			cmd:       CreateTicketCommand{Caller: admin, Subject: "Sub", Description: "long enough text", Priority: "LOW"},
			checkType: errors.IsForbiddenError,
		},
		{
			name:      "unknown priority",
			cmd:       CreateTicketCommand{Caller: customer, Subject: "Sub", Description: "long enough text", Priority: "URGENT"},
			checkType: errors.IsValidationError,
		},
		{
			name:      "blank subject",
			cmd:       CreateTicketCommand{Caller: customer, Subject: "   ", Description: "long enough text", Priority: "LOW"},
			checkType: errors.IsValidationError,
		},
		{
			name:      "short description",
			cmd:       CreateTicketCommand{Caller: customer, Subject: "Sub", Description: "too short", Priority: "LOW"},
			checkType: errors.IsValidationError,
		},
		{
			name:      "subject too long",
			cmd:       CreateTicketCommand{Caller: customer, Subject: strings.Repeat("s", 201), Description: "long enough text", Priority: "LOW"},
			checkType: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &mockPublisher{}
			uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTxManager{}, pub, escapeRenderer{}, logger.NewNop())

			result, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.checkType(err), "unexpected error: %v", err)
			assert.Empty(t, pub.published)
		})
	}
}

func TestCreateTicketUseCase_PublisherFailureDoesNotFailRequest(t *testing.T) {
	pub := &mockPublisher{err: fmt.Errorf("smtp unreachable")}
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTxManager{}, pub, escapeRenderer{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Caller: customer, Subject: "Sub", Description: "long enough text", Priority: "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, "HIGH", result.Priority)
}

func TestCreateTicketUseCase_RepositoryFailure(t *testing.T) {
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error { return fmt.Errorf("disk full") },
	}
	pub := &mockPublisher{}
	uc := NewCreateTicketUseCase(repo, &mockTxManager{}, pub, escapeRenderer{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Caller: customer, Subject: "Sub", Description: "long enough text", Priority: "LOW",
	})
	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
	assert.Empty(t, pub.published)
}

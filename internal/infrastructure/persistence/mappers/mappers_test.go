package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

func TestUserMapper_ToEntity(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	u, err := NewUserMapper().ToEntity(&models.UserModel{
		ID: 3, Email: "a@x.com", PasswordHash: "$2a$hash", Role: "ADMIN", CreatedAt: created,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), u.ID())
	assert.Equal(t, authorization.RoleAdmin, u.Role())
	assert.Equal(t, time.UTC, u.CreatedAt().Location())

	model := NewUserMapper().ToModel(u)
	assert.Equal(t, "a@x.com", model.Email)
	assert.Equal(t, "ADMIN", model.Role)
}

func TestUserMapper_RejectsCorruptEmail(t *testing.T) {
	_, err := NewUserMapper().ToEntity(&models.UserModel{ID: 1, Email: "broken"})
	assert.Error(t, err)
}

func TestTicketMapper_KeepsUnknownStatus(t *testing.T) {
	now := time.Now()
	tk, err := NewTicketMapper().ToDomain(&models.TicketModel{
		ID: 1, UserID: 2, Subject: "s", Description: "d", Status: "ARCHIVED", Priority: "LOW",
		CreatedAt: now, UpdatedAt: now,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.TicketStatus("ARCHIVED"), tk.Status())
}

func TestTicketMapper_Reply(t *testing.T) {
	r, err := ticket.NewReply(4, 5, "hello")
	require.NoError(t, err)
	require.NoError(t, r.SetID(6))

	m := NewTicketMapper()
	model := m.ReplyToModel(r)
	assert.Equal(t, uint(4), model.TicketID)

	back, err := m.ReplyToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, "hello", back.Message())
	assert.Equal(t, uint(6), back.ID())
}

package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

const (
	ownerID    uint = 1
	strangerID uint = 2
	adminID    uint = 99
)

func TestCanView(t *testing.T) {
	assert.NoError(t, CanView(authorization.RoleAdmin, adminID, ownerID))
	assert.NoError(t, CanView(authorization.RoleUser, ownerID, ownerID))
	assert.True(t, errors.IsForbiddenError(CanView(authorization.RoleUser, strangerID, ownerID)))
}

func TestCanReply(t *testing.T) {
	tests := []struct {
		name     string
		role     authorization.UserRole
		callerID uint
		status   vo.TicketStatus
		wantType errors.ErrorType
	}{
		{"owner on open ticket", authorization.RoleUser, ownerID, vo.StatusOpen, ""},
		{"owner on resolved ticket", authorization.RoleUser, ownerID, vo.StatusResolved, ""},
		{"admin on other's ticket", authorization.RoleAdmin, adminID, vo.StatusInProgress, ""},
		{"owner on closed ticket", authorization.RoleUser, ownerID, vo.StatusClosed, errors.ErrorTypeValidation},
		{"admin on closed ticket", authorization.RoleAdmin, adminID, vo.StatusClosed, errors.ErrorTypeValidation},
		{"stranger on open ticket", authorization.RoleUser, strangerID, vo.StatusOpen, errors.ErrorTypeForbidden},
		{"stranger on closed ticket gets forbidden first", authorization.RoleUser, strangerID, vo.StatusClosed, errors.ErrorTypeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanReply(tt.role, tt.callerID, ownerID, tt.status)
			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
		})
	}
}

func TestCanUpdateStatus(t *testing.T) {
	assert.NoError(t, CanUpdateStatus(authorization.RoleAdmin))
	assert.True(t, errors.IsForbiddenError(CanUpdateStatus(authorization.RoleUser)))
}

func TestCanCreate(t *testing.T) {
	assert.NoError(t, CanCreate(authorization.RoleUser))
	err := CanCreate(authorization.RoleAdmin)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Contains(t, err.Error(), "only customers can create tickets")
}

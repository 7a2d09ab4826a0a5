package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

func storedUser(t *testing.T, id uint, email, password string, role authorization.UserRole) *user.User {
	t.Helper()
	e, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, e, "hashed:"+password, role, time.Now().UTC())
	require.NoError(t, err)
	return u
}

package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestAuthenticateUseCase_Execute(t *testing.T) {
	// The stored role is ADMIN even though the token would say otherwise.
	admin := storedUser(t, 2, "admin@x.com", "password123", authorization.RoleAdmin)
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == "admin@x.com" {
				return admin, nil
			}
			return nil, nil
		},
	}
	jwtSvc := &mockJWTService{
		ParseSubjectFunc: func(token string) (string, error) {
			switch token {
			case "good":
				return "admin@x.com", nil
			case "deleted":
				return "gone@x.com", nil
			case "no-sub":
				return "", nil
			default:
				return "", fmt.Errorf("signature is invalid")
			}
		},
	}
	uc := NewAuthenticateUseCase(repo, jwtSvc, logger.NewNop())

	u, err := uc.Execute(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, uint(2), u.ID())
	assert.True(t, u.IsAdmin())

	for _, token := range []string{"", "tampered", "deleted", "no-sub"} {
		t.Run("reject "+token, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), token)
			require.Error(t, err)
			assert.True(t, errors.IsUnauthorizedError(err))
		})
	}
}

func TestAuthenticateUseCase_RepositoryFailure(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, fmt.Errorf("db down")
		},
	}
	jwtSvc := &mockJWTService{ParseSubjectFunc: func(string) (string, error) { return "a@x.com", nil }}

	_, err := NewAuthenticateUseCase(repo, jwtSvc, logger.NewNop()).Execute(context.Background(), "good")
	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
}

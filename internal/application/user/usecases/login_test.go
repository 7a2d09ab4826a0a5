package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestLoginWithPasswordUseCase_Execute(t *testing.T) {
	alice := storedUser(t, 1, "a@x.com", "password123", authorization.RoleUser)
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == "a@x.com" {
				return alice, nil
			}
			return nil, nil
		},
	}

	tests := []struct {
		name     string
		cmd      LoginCommand
		wantErr  bool
		wantRole string
	}{
		{name: "correct credentials", cmd: LoginCommand{Email: "a@x.com", Password: "password123"}, wantRole: "USER"},
		{name: "email is normalised", cmd: LoginCommand{Email: " A@X.COM", Password: "password123"}, wantRole: "USER"},
		{name: "wrong password", cmd: LoginCommand{Email: "a@x.com", Password: "wrongpass1"}, wantErr: true},
		{name: "unknown email", cmd: LoginCommand{Email: "b@x.com", Password: "password123"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginWithPasswordUseCase(repo, plainHasher{}, &mockJWTService{}, logger.NewNop())
			resp, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUnauthorizedError(err))
				assert.Equal(t, invalidCredentialsMessage, errors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-for-a@x.com", resp.AccessToken)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, tt.wantRole, resp.Role)
			assert.Equal(t, int64(3600), resp.ExpiresIn)
		})
	}
}

package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

// JWTService issues and parses access tokens. The token subject is the
// account email.
type JWTService interface {
	IssueAccessToken(subject string, role authorization.UserRole) (token string, expiresIn int64, err error)
	ParseSubject(token string) (string, error)
}

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*dto.UserResponse, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenResponse, error)
}

type AuthenticateExecutor interface {
	Execute(ctx context.Context, token string) (*user.User, error)
}

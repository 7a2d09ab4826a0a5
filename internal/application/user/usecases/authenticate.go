package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// AuthenticateUseCase resolves a bearer token to the account it names. The
// returned user carries the role stored in the database, not the one in the
// token.
type AuthenticateUseCase struct {
	userRepo   user.Repository
	jwtService JWTService
	logger     logger.Interface
}

func NewAuthenticateUseCase(userRepo user.Repository, jwtService JWTService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("missing access token")
	}

	subject, err := uc.jwtService.ParseSubject(token)
	if err != nil {
		uc.logger.Debugw("token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}
	if subject == "" {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	u, err := uc.userRepo.GetByEmail(ctx, subject)
	if err != nil {
		uc.logger.Errorw("failed to load token subject", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}

	return u, nil
}

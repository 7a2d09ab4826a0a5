package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const invalidCredentialsMessage = "invalid email or password"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password share one message so callers cannot
	// probe which addresses are registered.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("login rejected", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, expiresIn, err := uc.jwtService.IssueAccessToken(existingUser.Email(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
		Role:        existingUser.Role().String(),
		ExpiresIn:   expiresIn,
	}, nil
}

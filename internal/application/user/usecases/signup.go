package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type SignupCommand struct {
	Email    string
	Password string
}

// SignupUseCase registers a customer account.
type SignupUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewSignupUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *SignupUseCase {
	return &SignupUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.UserResponse, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(email, password, authorization.RoleUser, uc.passwordHasher)
	if err != nil {
		uc.logger.Errorw("failed to build user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// A concurrent signup can still win the race past ExistsByEmail; the
	// repository reports the unique index violation as a conflict.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID())

	return dto.ToUserResponse(newUser), nil
}

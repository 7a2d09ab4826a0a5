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

type EnsureAdminCommand struct {
	Email    string
	Password string
}

// EnsureAdminResult reports what EnsureAdmin had to do.
type EnsureAdminResult struct {
	User     *dto.UserResponse
	Created  bool
	Promoted bool
}

// EnsureAdminUseCase makes sure an ADMIN account exists for the given email.
// A missing account is created with the given password; an existing customer
// account is promoted and keeps its password. Used by start-up bootstrap and
// the admin CLI, never by the HTTP API.
type EnsureAdminUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewEnsureAdminUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *EnsureAdminUseCase) Execute(ctx context.Context, cmd EnsureAdminCommand) (*EnsureAdminResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existing != nil {
		if !existing.PromoteToAdmin() {
			return &EnsureAdminResult{User: dto.ToUserResponse(existing)}, nil
		}
		if err := uc.userRepo.UpdateRole(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
		uc.logger.Infow("user promoted to admin", "user_id", existing.ID())
		return &EnsureAdminResult{User: dto.ToUserResponse(existing), Promoted: true}, nil
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	admin, err := user.NewUser(email, password, authorization.RoleAdmin, uc.passwordHasher)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	uc.logger.Infow("admin account created", "user_id", admin.ID())
	return &EnsureAdminResult{User: dto.ToUserResponse(admin), Created: true}, nil
}

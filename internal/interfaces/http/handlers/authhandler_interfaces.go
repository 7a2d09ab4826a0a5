package handlers

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
)

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*dto.UserResponse, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.TokenResponse, error)
}

type getUserUseCase interface {
	ExecuteByID(ctx context.Context, id uint) (*dto.UserResponse, error)
}

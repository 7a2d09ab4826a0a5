package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	UpdateRoleFunc    func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, u *user.User) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, u)
	}
	return nil
}

// plainHasher stores passwords with a marker prefix so tests can assert on
// what was hashed.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	IssueAccessTokenFunc func(subject string, role authorization.UserRole) (string, int64, error)
	ParseSubjectFunc     func(token string) (string, error)
}

func (m *mockJWTService) IssueAccessToken(subject string, role authorization.UserRole) (string, int64, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(subject, role)
	}
	return "token-for-" + subject, 3600, nil
}

func (m *mockJWTService) ParseSubject(token string) (string, error) {
	if m.ParseSubjectFunc != nil {
		return m.ParseSubjectFunc(token)
	}
	return "", fmt.Errorf("not configured")
}

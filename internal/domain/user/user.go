package user

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// User is an account that can authenticate. Only the role may change after
// creation, and only through administrative tooling.
type User struct {
	id           uint
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
}

// NewUser creates an account with a hashed password.
func NewUser(email *vo.Email, password *vo.Password, role authorization.UserRole, hasher PasswordHasher) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if password == nil {
		return nil, fmt.Errorf("password is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid user role: %s", role)
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		email:        email,
		passwordHash: hash,
		role:         role,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, email *vo.Email, passwordHash string, role authorization.UserRole, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() string                { return u.email.String() }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) IsAdmin() bool                { return u.role.IsAdmin() }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword checks plainPassword against the stored hash.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// PromoteToAdmin grants the ADMIN role. It reports false when the user
// already was an admin.
func (u *User) PromoteToAdmin() bool {
	if u.role.IsAdmin() {
		return false
	}
	u.role = authorization.RoleAdmin
	return true
}

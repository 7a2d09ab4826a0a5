// Package authorization holds the closed set of account roles.
package authorization

import "fmt"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsCustomer() bool {
	return r == RoleUser
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// NewUserRole parses a stored or transported role name.
func NewUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role: %s", s)
	}
	return role, nil
}

package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

// Password is a plaintext password that passed the length policy. It is only
// held long enough to be hashed.
type Password struct {
	value string
}

func NewPassword(plainPassword string) (*Password, error) {
	n := utf8.RuneCountInString(plainPassword)
	if n < PasswordMinLength {
		return nil, fmt.Errorf("password must be at least %d characters long", PasswordMinLength)
	}
	if n > PasswordMaxLength {
		return nil, fmt.Errorf("password must be at most %d characters long", PasswordMaxLength)
	}
	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}

package dto

import (
	domainUser "github.com/orris-inc/helpdesk/internal/domain/user"
)

// SignupRequest represents the request to create a customer account
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8,max=128" example:"password123"`
}

// LoginRequest represents the request to obtain an access token
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserResponse represents the public view of an account
type UserResponse struct {
	ID    uint   `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"USER"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	Role        string `json:"role" example:"USER"`
	ExpiresIn   int64  `json:"expires_in" example:"3600"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:    u.ID(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

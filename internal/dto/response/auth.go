package response

import (
	"time"

	"yatri-auth/internal/data/entity"
)

const TokenTypeBearer = "bearer"

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	IsVerified bool   `json:"is_verified"`
	Message    string `json:"message"`
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, accessToken string) *AuthResponse {
	return &AuthResponse{
		User:        UserToResponse(user),
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}
}

func Success(message string) *MessageResponse {
	return &MessageResponse{Message: message, Status: "success"}
}

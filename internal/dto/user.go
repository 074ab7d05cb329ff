package dto

import (
	"github.com/todofast/api/internal/constants"
	"github.com/todofast/api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserDTO `json:"users"`
}

// TokenDTO represents an issued access token
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageDTO represents a simple confirmation message
type MessageDTO struct {
	Message string `json:"message"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return UserListResponse{Users: items}
}

// ToTokenDTO wraps an access token with its type
func ToTokenDTO(accessToken string) TokenDTO {
	return TokenDTO{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
	}
}

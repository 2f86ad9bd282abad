package user

import (
	userRepo "policygen/database/repository/user"
	"policygen/models"
)

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates the registration details and creates the account.
	RegisterUser(req RegistrationRequest) (*models.User, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(username, password string, remember bool) (*AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateProfile updates name, email and optionally the password.
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)
	// RevokeAuthToken invalidates the user's current token (logout).
	RevokeAuthToken(userID string) error
	// DeleteUser removes the account.
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the signup form fields.
type RegistrationRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// ProfileUpdateRequest carries the profile form fields. Password is only
// changed when both password fields are supplied.
type ProfileUpdateRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

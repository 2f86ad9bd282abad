package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"policygen/database/storage"
	"policygen/models"
	"policygen/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new account with a bcrypt-hashed password.
// Username and email uniqueness is enforced by the store; a violation is
// surfaced as storage.ErrDuplicateKey.
func (s *DefaultUserService) RegisterUser(req RegistrationRequest) (*models.User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if username == "" || email == "" || req.Name == "" || req.Password == "" {
		return nil, errors.New("all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		LastLogin:    time.Now(),
	}

	if err := s.Repo.Create(newUser); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, err
		}
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.Repo.GetByID(newUser.ID)
}

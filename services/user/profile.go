package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"policygen/database/storage"
	"policygen/models"
	"policygen/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile updates name and email, and changes the password when both
// password fields are supplied. A password change requires the current
// password to verify.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	updateDoc := bson.M{
		"name":  req.Name,
		"email": strings.TrimSpace(strings.ToLower(req.Email)),
	}

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return nil, fmt.Errorf("current password is incorrect")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("UpdateProfile: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("profile update failed, please try again")
		}
		updateDoc["password_hash"] = string(hash)
	}

	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("profile update failed, please try again")
	}

	return s.Repo.GetByID(userID)
}

// DeleteUser removes the account and clears any cached auth state.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to clear token cache", zap.Error(err))
	}
	return nil
}

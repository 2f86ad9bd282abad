package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"policygen/database/storage"
	"policygen/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionDuration  = 24 * time.Hour
	rememberDuration = 7 * 24 * time.Hour
)

// AuthenticateUser verifies credentials, updates last_login and issues a
// JWT. The token hash is stored on the user record and cached in Redis so
// the auth middleware can validate without a DB round trip.
func (s *DefaultUserService) AuthenticateUser(username, password string, remember bool) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByUsername(strings.TrimSpace(strings.ToLower(username)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password")
		}
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	duration := sessionDuration
	if remember {
		duration = rememberDuration
	}
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, duration)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{
		"token_hash": tokenHash,
		"last_login": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userRec.ID, updateDoc); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Cache the token hash; the middleware falls back to the DB on a miss.
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, duration).Err(); err != nil {
		utils.GetLogger().Warn("AuthenticateUser: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:       userRec.ID,
		Token:    token,
		Username: userRec.Username,
		Name:     userRec.Name,
		Email:    userRec.Email,
	}, nil
}

// RevokeAuthToken clears the stored and cached token hash, signing the
// user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return err
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to clear token cache", zap.Error(err))
	}
	return nil
}

package handlers

import (
	"errors"
	"net/http"

	"policygen/database/storage"
	"policygen/services/policy"
	"policygen/services/user"
	"policygen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the authenticated user's profile endpoints.
type UserHandler struct {
	UserService   user.UserService
	PolicyService policy.PolicyService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc user.UserService, policySvc policy.PolicyService) *UserHandler {
	return &UserHandler{UserService: userSvc, PolicyService: policySvc}
}

// GetProfileHandler handles GET /api/users/me. The response includes the
// dashboard policy count.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	count, err := h.PolicyService.CountPolicies(c.Request.Context(), userID)
	if err != nil {
		logger.Warn("Failed to count policies", zap.String("id", userID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"user": usr, "policyCount": count})
}

// UpdateProfileHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req user.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.UserService.UpdateProfile(userID, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAccountHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(userID); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"policygen/database/storage"
	"policygen/models"
	"policygen/services/policy"
	"policygen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PolicyHandler exposes the policy generation and retrieval endpoints.
type PolicyHandler struct {
	Service policy.PolicyService
}

// NewPolicyHandler creates a PolicyHandler.
func NewPolicyHandler(svc policy.PolicyService) *PolicyHandler {
	return &PolicyHandler{Service: svc}
}

// CreatePolicyHandler handles POST /api/policies. The request body is the
// questionnaire answer set; the response is the persisted policy including
// the generated document, compliance flags and vulnerability score.
func (h *PolicyHandler) CreatePolicyHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		logger.Error("Invalid questionnaire payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.GeneratePolicy(c.Request.Context(), userID, answers)
	if err != nil {
		var missing policy.MissingFieldError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error(), "field": missing.Field})
			return
		}
		logger.Error("Failed to generate policy", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate policy"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListPoliciesHandler handles GET /api/policies.
func (h *PolicyHandler) ListPoliciesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	policies, err := h.Service.ListPolicies(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list policies", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list policies"})
		return
	}
	if policies == nil {
		policies = []models.Policy{}
	}

	c.JSON(http.StatusOK, policies)
}

// GetPolicyHandler handles GET /api/policies/:id.
func (h *PolicyHandler) GetPolicyHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := h.Service.GetPolicy(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch policy"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdatePolicyHandler handles PUT /api/policies/:id. The body is a full
// questionnaire answer set; document, flags and score are regenerated.
func (h *PolicyHandler) UpdatePolicyHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		logger.Error("Invalid questionnaire payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UpdatePolicy(c.Request.Context(), userID, c.Param("id"), answers)
	if err != nil {
		var missing policy.MissingFieldError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error(), "field": missing.Field})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
		default:
			logger.Error("Failed to update policy", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update policy"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePolicyHandler handles DELETE /api/policies/:id.
func (h *PolicyHandler) DeletePolicyHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Service.DeletePolicy(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete policy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Policy deleted"})
}

// DownloadPolicyHandler handles GET /api/policies/:id/download, serving the
// document as a plain-text attachment with markup stripped.
func (h *PolicyHandler) DownloadPolicyHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filename, text, err := h.Service.ExportPolicy(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
			return
		}
		utils.GetLogger().Error("Failed to export policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export policy"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

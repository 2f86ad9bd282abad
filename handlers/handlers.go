package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID returns the authenticated user's ID set by the auth
// middleware, aborting with 401 when absent.
func currentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

package routes

import (
	"net/http"
	"time"

	userRepo "policygen/database/repository/user"
	"policygen/handlers"
	"policygen/middleware"
	"policygen/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers and repositories the routes need.
type HandlerBundle struct {
	UserRepo      userRepo.UserRepository
	AuthHandler   *handlers.AuthHandler
	UserHandler   *handlers.UserHandler
	PolicyHandler *handlers.PolicyHandler
}

// RegisterUserRoutes registers signup, login and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.AuthHandler.RegisterHandler)
		api.POST("/login", hb.AuthHandler.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/logout", hb.AuthHandler.LogoutHandler)
		api.GET("/me", hb.UserHandler.GetProfileHandler)
		api.PUT("/me", hb.UserHandler.UpdateProfileHandler)
		api.DELETE("/me", hb.UserHandler.DeleteAccountHandler)
	}
}

// RegisterPolicyRoutes registers the policy generation endpoints.
func RegisterPolicyRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/policies")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.PolicyHandler.CreatePolicyHandler)
		api.GET("", hb.PolicyHandler.ListPoliciesHandler)
		api.GET("/:id", hb.PolicyHandler.GetPolicyHandler)
		api.PUT("/:id", hb.PolicyHandler.UpdatePolicyHandler)
		api.DELETE("/:id", hb.PolicyHandler.DeletePolicyHandler)
		api.GET("/:id/download", hb.PolicyHandler.DownloadPolicyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPolicyRoutes(r, hb)
	RegisterHealthRoute(r)
}

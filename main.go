package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"policygen/config"
	"policygen/cron"
	"policygen/database"
	policyRepoPkg "policygen/database/repository/policy"
	userRepoPkg "policygen/database/repository/user"
	"policygen/handlers"
	"policygen/middleware"
	"policygen/routes"
	"policygen/services/policy"
	"policygen/services/tasks"
	"policygen/services/user"
	"policygen/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	policyRepo := policyRepoPkg.NewMongoPolicyRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	auditClient := tasks.NewAuditClient()
	defer auditClient.Close()

	policyService := &policy.DefaultPolicyService{
		Repo:  policyRepo,
		Audit: auditClient,
	}

	// Background audit worker recomputing stored compliance results.
	cron.InitAuditWorker(policyRepo)

	// Periodic dependency health snapshot for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:      userRepo,
		AuthHandler:   handlers.NewAuthHandler(userService),
		UserHandler:   handlers.NewUserHandler(userService, policyService),
		PolicyHandler: handlers.NewPolicyHandler(policyService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/api"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/handler"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/logger"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/middleware"
)

func main() {
	// 1. Config
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)
	if logger.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger.Info("🚀 [Go] Starting job board API...", "environment", cfg.AppEnv)
	if cfg.JWTSecret() == "" {
		appLogger.Warn("⚠️ JWT_SECRET is not set, login and protected routes will fail until it is")
	}

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// 5. Initialize Job List Cache
	var jobCache database.JobListCache
	redisClient, err := database.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis", "error", err)
		appLogger.Info("💡 Job listings will be served from Postgres only")
		jobCache = database.NewNoOpJobListCache(appLogger)
	} else {
		jobCache = redisClient
	}
	defer jobCache.Close()

	// 6. Initialize Services
	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenExpiration)*time.Second)
	authService := service.NewAuthService(userRepo, tokenService, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	jobService := service.NewJobService(jobRepo, jobCache, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	jobHandler := handler.NewJobHandler(jobService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	r := api.SetupRouter(authHandler, userHandler, jobHandler, authMiddleware, appLogger)

	// 8. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 9. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	case sig := <-quit:
		appLogger.Info("🛑 [Go] Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("❌ Graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	appLogger.Info("✅ [Go] Server stopped")
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/handler"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.SetTrustedProxies(nil)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := authMiddleware.RequireAuth()

	// User routes
	userGroup := r.Group("/api/user")
	{
		userGroup.GET("", userHandler.ListUsers)
		userGroup.POST("", authHandler.Register)
		userGroup.POST("/login", authHandler.Login)
		userGroup.DELETE("/:id", userHandler.DeleteUser)

		// Saved jobs act on the token's user
		userGroup.GET("/saved-jobs", requireAuth, userHandler.GetSavedJobs)
		userGroup.PUT("/save-job/:jobId", requireAuth, userHandler.SaveJob)
		userGroup.PUT("/unsave-job/:jobId", requireAuth, userHandler.UnsaveJob)
	}

	// Job routes
	jobGroup := r.Group("/api/job")
	{
		jobGroup.GET("", jobHandler.ListJobs)
		jobGroup.POST("", jobHandler.CreateJob)
		jobGroup.DELETE("/:id", jobHandler.DeleteJob)
	}

	r.GET("/protected", requireAuth, authHandler.Protected)

	return r
}

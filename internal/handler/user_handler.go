package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/middleware"
)

// UserHandler handles user listing, deletion and the saved jobs relation
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles GET /api/user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetSavedJobs handles GET /api/user/saved-jobs
func (h *UserHandler) GetSavedJobs(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	jobs, err := h.userService.GetSavedJobs(userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedJobs": jobs})
}

// SaveJob handles PUT /api/user/save-job/:jobId
func (h *UserHandler) SaveJob(c *gin.Context) {
	userID, jobID, ok := h.savedJobParams(c)
	if !ok {
		return
	}

	user, err := h.userService.SaveJob(userID, jobID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UnsaveJob handles PUT /api/user/unsave-job/:jobId
func (h *UserHandler) UnsaveJob(c *gin.Context) {
	userID, jobID, ok := h.savedJobParams(c)
	if !ok {
		return
	}

	user, err := h.userService.UnsaveJob(userID, jobID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// currentUser resolves the token identity, writing a 400 when it is unusable
func (h *UserHandler) currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok || userID == 0 {
		h.logger.Warn("⚠️ [UserHandler] No usable user ID in context")
		badRequest(c, msgInvalidID)
		return 0, false
	}
	return int64(userID), true
}

func (h *UserHandler) savedJobParams(c *gin.Context) (int64, int64, bool) {
	userID, ok := h.currentUser(c)
	if !ok {
		return 0, 0, false
	}

	jobID, ok := parseID(c.Param("jobId"))
	if !ok {
		badRequest(c, msgInvalidJobID)
		return 0, 0, false
	}
	return userID, jobID, true
}

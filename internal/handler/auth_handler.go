package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/middleware"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// CredentialsRequest is the body of both register and login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/user
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid registration request", "error", err)
		badRequest(c, "Email and password are required.")
		return
	}

	user, err := h.service.Register(req.Email, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login handles POST /api/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid login request", "error", err)
		badRequest(c, "Email and password are required.")
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
	})
}

// Protected handles GET /protected, a token smoke test
func (h *AuthHandler) Protected(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.logger.Error("❌ [Handler] User ID not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
		return
	}

	c.String(http.StatusOK, "User %d authenticated", userID)
}

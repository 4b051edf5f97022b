package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
)

// Validation messages shared by the id-taking routes
const (
	msgInvalidID    = "ID parameter is NaN."
	msgInvalidJobID = "Job ID parameter is NaN."
	msgInternal     = "Internal server error."
)

// parseID accepts a base-10 integer path segment. Zero is rejected together
// with non-numbers; negative values pass and are resolved by the store.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// handleServiceError maps service errors to HTTP responses. Anything not
// classified is a store error and is returned verbatim with a 500.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		badRequest(c, "Email already registered.")
	case errors.Is(err, service.ErrInvalidCredentials):
		badRequest(c, "Email and password do not match.")
	case errors.Is(err, service.ErrPasswordTooLong):
		badRequest(c, "Password must be at most 72 bytes.")
	case errors.Is(err, service.ErrSecretNotConfigured):
		logger.Error("❌ [Handler] Token secret is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	default:
		logger.Error("❌ [Handler] Store error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

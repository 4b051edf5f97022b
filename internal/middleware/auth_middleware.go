package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
)

const userIDKey = "userID"

// TokenValidator verifies an access token and returns the user id it carries
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (uint, error)
}

// AuthMiddleware handles JWT validation
type AuthMiddleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(validator TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// RequireAuth validates the bearer token and sets userID in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.logger.Warn("⚠️ [Middleware] Missing or malformed Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		userID, err := m.validator.ValidateAccessToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSecretNotConfigured):
				m.logger.Error("❌ [Middleware] Token secret is not configured")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			case errors.Is(err, service.ErrTokenExpired):
				m.logger.Warn("⚠️ [Middleware] Expired token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired."})
			default:
				m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			}
			return
		}

		c.Set(userIDKey, userID)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", userID)

		c.Next()
	}
}

// CurrentUserID returns the identity set by RequireAuth
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

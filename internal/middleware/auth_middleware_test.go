package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/middleware"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupProtectedRouter(validator middleware.TokenValidator) *gin.Engine {
	r := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(validator, testutil.DiscardLogger())
	r.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMocks func(*testutil.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			setupMocks: func(m *testutil.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized."}`,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setupMocks: func(m *testutil.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized."}`,
		},
		{
			name:       "empty bearer",
			header:     "Bearer ",
			setupMocks: func(m *testutil.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized."}`,
		},
		{
			name:   "invalid token",
			header: "Bearer garbage",
			setupMocks: func(m *testutil.MockAuthService) {
				m.On("ValidateAccessToken", "garbage").Return(uint(0), service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid token."}`,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setupMocks: func(m *testutil.MockAuthService) {
				m.On("ValidateAccessToken", "old").Return(uint(0), service.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Token expired."}`,
		},
		{
			name:   "secret not configured",
			header: "Bearer any",
			setupMocks: func(m *testutil.MockAuthService) {
				m.On("ValidateAccessToken", "any").Return(uint(0), service.ErrSecretNotConfigured)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error."}`,
		},
		{
			name:   "unexpected verify error",
			header: "Bearer weird",
			setupMocks: func(m *testutil.MockAuthService) {
				m.On("ValidateAccessToken", "weird").Return(uint(0), errors.New("boom"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid token."}`,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMocks: func(m *testutil.MockAuthService) {
				m.On("ValidateAccessToken", "good").Return(uint(12), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"user_id":12}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(testutil.MockAuthService)
			tt.setupMocks(validator)
			router := setupProtectedRouter(validator)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			validator.AssertExpectations(t)
		})
	}
}

func TestCurrentUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.CurrentUserID(c)
	assert.False(t, ok)

	c.Set("userID", "not-a-uint")
	_, ok = middleware.CurrentUserID(c)
	assert.False(t, ok)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	requestID := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), requestID)
	assert.Contains(t, buf.String(), `"status":200`)

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

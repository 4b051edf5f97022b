package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/testutil"
)

// Password hash for "password" (bcrypt)
const validPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func newAuthService(userRepo *testutil.MockUserRepository, secret string) service.AuthService {
	tokens := service.NewTokenService(config.StaticSecret(secret), time.Hour)
	return service.NewAuthService(userRepo, tokens, testutil.DiscardLogger())
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(*testutil.MockUserRepository)
		wantErr    error
		wantUserID uint
	}{
		{
			name:  "success",
			email: "test@example.com",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
					args.Get(0).(*models.User).ID = 1
				}).Return(nil)
			},
			wantUserID: 1,
		},
		{
			name:  "email already exists",
			email: "existing@example.com",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "existing@example.com").Return(&models.User{ID: 1, Email: "existing@example.com"}, nil)
			},
			wantErr: service.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			tt.setupMocks(userRepo)

			user, err := newAuthService(userRepo, testSecret).Register(tt.email, "secret1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUserID, user.ID)
				assert.NotEqual(t, "secret1", user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

				cost, err := bcrypt.Cost([]byte(user.Password))
				require.NoError(t, err)
				assert.Equal(t, 10, cost)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StoreError(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	dbErr := errors.New("connection refused")
	userRepo.On("FindByEmail", "test@example.com").Return(nil, dbErr)

	user, err := newAuthService(userRepo, testSecret).Register("test@example.com", "secret1")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("FindByEmail", "long@example.com").Return(nil, repository.ErrUserNotFound)

	user, err := newAuthService(userRepo, testSecret).Register("long@example.com", strings.Repeat("p", 73))

	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_PasswordAtLimit(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("FindByEmail", "edge@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	_, err := newAuthService(userRepo, testSecret).Register("edge@example.com", strings.Repeat("p", 72))

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		secret     string
		setupMocks func(*testutil.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "success",
			email:    "test@example.com",
			password: "password",
			secret:   testSecret,
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
					ID: 1, Email: "test@example.com", Password: validPasswordHash,
				}, nil)
			},
		},
		{
			name:     "user not found",
			email:    "nonexistent@example.com",
			password: "password",
			secret:   testSecret,
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "nonexistent@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			secret:   testSecret,
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
					ID: 1, Email: "test@example.com", Password: validPasswordHash,
				}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "plaintext password is never accepted",
			email:    "legacy@example.com",
			password: "password",
			secret:   testSecret,
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "legacy@example.com").Return(&models.User{
					ID: 2, Email: "legacy@example.com", Password: "password",
				}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "secret not configured",
			email:    "test@example.com",
			password: "password",
			secret:   "",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
					ID: 1, Email: "test@example.com", Password: validPasswordHash,
				}, nil)
			},
			wantErr: service.ErrSecretNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			tt.setupMocks(userRepo)

			authService := newAuthService(userRepo, tt.secret)
			token, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				userID, err := authService.ValidateAccessToken(token)
				require.NoError(t, err)
				assert.Equal(t, uint(1), userID)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

package service

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(email, password string) (*models.User, error)
	Login(email, password string) (string, error)
	ValidateAccessToken(tokenString string) (uint, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	tokens TokenService,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *authService) Register(email, password string) (*models.User, error) {
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		s.logger.Warn("⚠️ [AuthService] Password exceeds bcrypt limit", "email", email)
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and returns a signed access token. Unknown
// email and wrong password produce the same error.
func (s *authService) Login(email, password string) (string, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to sign token", "error", err)
		return "", err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return token, nil
}

func (s *authService) ValidateAccessToken(tokenString string) (uint, error) {
	return s.tokens.Verify(tokenString)
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("email and password do not match")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

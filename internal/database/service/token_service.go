package service

import (
	"errors"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
)

// TokenService signs and verifies access tokens carrying a user id
type TokenService interface {
	Sign(userID uint) (string, error)
	Verify(tokenString string) (uint, error)
}

type jwtTokenService struct {
	secret     config.SecretFunc
	expiration time.Duration
}

// NewTokenService creates an HS256 token service. The secret is looked up on
// every call.
func NewTokenService(secret config.SecretFunc, expiration time.Duration) TokenService {
	return &jwtTokenService{
		secret:     secret,
		expiration: expiration,
	}
}

func (s *jwtTokenService) Sign(userID uint) (string, error) {
	secret := s.secret()
	if secret == "" {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *jwtTokenService) Verify(tokenString string) (uint, error) {
	secret := s.secret()
	if secret == "" {
		return 0, ErrSecretNotConfigured
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, ok := claims["id"].(float64)
	if !ok || userID < 0 || userID != math.Trunc(userID) {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// Token errors
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrSecretNotConfigured = errors.New("token signing secret is not configured")
)

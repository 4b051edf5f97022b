package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// JWTSecretEnv is the variable holding the token signing secret.
const JWTSecretEnv = "JWT_SECRET"

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDB            int64
	JobCacheTTL        int64 // Job list cache TTL in seconds
	ShutdownTimeout    int64 // Graceful shutdown timeout in seconds
	TokenExpiration    int64 // Access token lifetime in seconds

	// JWTSecret is resolved on every sign/verify so the service can boot
	// without it and only fail the requests that need it.
	JWTSecret SecretFunc
}

// SecretFunc returns the current signing secret, or "" when unset.
type SecretFunc func() string

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                   // Default development
		LogLevel:           getLogLevel(),                                      // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "3000"),                 // Default 3000
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                    // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),             // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "jobboard_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "jobboard_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "jobboard_db"),       // Default database name
		RedisHost:          getEnv("REDIS_HOST", "redis"),                      // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                  // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                       // Default empty
		RedisDB:            getEnvAsInt64("REDIS_DATABASE", 0),                 // Default 0
		JobCacheTTL:        getEnvAsInt64("JOB_CACHE_TTL", 60),                 // Default 1 minute
		ShutdownTimeout:    getEnvAsInt64("SHUTDOWN_TIMEOUT", 10),              // Default 10 seconds
		TokenExpiration:    3600,                                               // Fixed 1 hour
		JWTSecret:          EnvSecret(JWTSecretEnv),
	}
}

// EnvSecret reads key from the process environment at call time.
func EnvSecret(key string) SecretFunc {
	return func() string {
		return os.Getenv(key)
	}
}

// StaticSecret always returns secret. Mostly useful in tests.
func StaticSecret(secret string) SecretFunc {
	return func() string {
		return secret
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
)

func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds the application logger on top of w and installs it
// as the slog default.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if IsProduction(cfg) {
		// JSON format
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Human-readable format
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}

func IsProduction(cfg *config.Config) bool {
	return strings.ToLower(cfg.AppEnv) == "production"
}

package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ndanilov/scoreline/internal/pkg/config"
)

// Setup configures the global slog logger from config and returns it.
// Log output goes to stderr so the rendered scoreboard stays clean on
// stdout.
func Setup(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

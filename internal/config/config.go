package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// RedisURL is a redis:// URL or host:port. Empty disables drafts in the
	// editor; the API refuses to start without it.
	RedisURL string
	DraftTTL time.Duration

	EditorLogFile string
	ExportDir     string
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("DRAFT_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %s is negative", ttl)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:      os.Getenv("REDIS_URL"),
		DraftTTL:      ttl,
		EditorLogFile: getEnv("EDITOR_LOG_FILE", "mythic-editor.log"),
		ExportDir:     getEnv("EXPORT_DIR", "."),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

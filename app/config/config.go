package config

import (
	"os"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Listen string
	Logs   LogConfig
	Chess  ChessConfig
}

type LogConfig struct {
	Style string // "console" for human output, anything else is JSON
	Level string
}

type ChessConfig struct {
	UserAgent      string // friendly UA per chess.com API guidelines
	FetchTimeout   time.Duration
	MaxConcurrency int // parallel monthly-archive fetches
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Listen: envOr("LISTEN_ADDR", "0.0.0.0:8080"),
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		Chess: ChessConfig{
			UserAgent:      envOr("CHESS_USER_AGENT", "KemoriSite/1.0 (+https://github.com/Kemori82/site)"),
			FetchTimeout:   time.Duration(envIntOr("CHESS_FETCH_TIMEOUT_SECONDS", 60)) * time.Second,
			MaxConcurrency: envIntOr("CHESS_FETCH_CONCURRENCY", 8),
		},
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

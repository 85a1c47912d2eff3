package config

import (
	"fmt"
	"os"
	"strings"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL   string
	ListenAddr    string
	SessionSecret string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ListenAddr:    strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "promo_planner.db"
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

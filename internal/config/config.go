// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"CARSERV_DB_PATH" envDefault:"./data/carserv.db"`
	ServerHost string `env:"CARSERV_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CARSERV_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CARSERV_ENV" envDefault:"development"`
	LogLevel   string `env:"CARSERV_LOG_LEVEL" envDefault:"info"`

	// PublicRead serves content reads anonymously. When false every
	// content route requires authentication, matching deployments that
	// front the whole site with credentials.
	PublicRead bool `env:"CARSERV_PUBLIC_READ" envDefault:"true"`

	// AdminPassword is used once to seed the initial admin account.
	// When empty a random password is generated and logged at startup.
	AdminPassword string `env:"CARSERV_ADMIN_PASSWORD"`

	// Seeding configuration
	DoSeedDemo bool `env:"CARSERV_DO_SEED_DEMO" envDefault:"true"`

	// Rate limiting
	RateLimitRPS   float64 `env:"CARSERV_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"CARSERV_RATE_LIMIT_BURST" envDefault:"40"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps the configured log level name onto a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("CARSERV_SERVER_PORT must be in 1-65535, got %d", cfg.ServerPort)
	}
	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("CARSERV_RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS)
	}

	return cfg, nil
}

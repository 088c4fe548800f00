// Package config loads playtrack configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings used by the playtrack CLI. Library users
// pass these values to track and report directly.
type Config struct {
	// BaseURL is the platform origin save requests are issued against.
	BaseURL string `env:"PLAYTRACK_BASE_URL" envDefault:"http://localhost:8000"`
	// CSRFToken is the opaque token attached as the X-CSRFToken header.
	CSRFToken string `env:"PLAYTRACK_CSRF_TOKEN"`
	// UserID identifies the player when the session script omits one.
	UserID string `env:"PLAYTRACK_USER_ID"`
	// SessionID overrides the generated session identifier.
	SessionID string `env:"PLAYTRACK_SESSION_ID"`
}

// Load reads the CLI configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

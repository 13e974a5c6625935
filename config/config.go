package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication configuration
//   - database.go: Database and session-store configuration
//   - http.go: HTTP server configuration
//   - marketplace.go: Marketplace defaults and operating-mode flags
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Marketplace configuration
	Marketplace MarketplaceConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Marketplace.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks the DEV environment variable directly so that callers
// which set it after config parsing still get dev behavior.
func (c *AppConfig) detectDevMode() {
	if c.IsDev {
		return
	}
	if v, ok := os.LookupEnv("DEV"); ok && strings.EqualFold(strings.TrimSpace(v), "true") {
		c.IsDev = true
	}
}

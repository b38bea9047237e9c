// Package config loads runtime settings for the anvil CLI.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds the CLI's runtime settings.
//
// Fields:
//   - APIKey: the Anvil API key. May be empty; the CLI prompts for it.
//   - BaseURL: the API host, overridable for mock servers.
//   - Debug: enables request/response logging to stderr.
type Config struct {
	APIKey  string `env:"ANVIL_API_KEY"`
	BaseURL string `env:"ANVIL_BASE_URL,default=https://app.useanvil.com"`
	Debug   bool   `env:"ANVIL_DEBUG,default=false"`
}

// Load reads a .env file when one exists in the working directory, then
// overlays the process environment. Later sources take precedence.
func Load() (*Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}
	return &cfg, nil
}

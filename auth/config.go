package auth

import (
	"fmt"

	"github.com/kbukum/svcerrors/auth/jwt"
)

// Config holds authentication configuration.
type Config struct {
	// Enabled controls whether authentication is active.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// JWT configures the JWT token service.
	JWT jwt.Config `yaml:"jwt" mapstructure:"jwt"`

	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
}

// ApplyDefaults sets sensible defaults.
func (c *Config) ApplyDefaults() {
	c.JWT.ApplyDefaults()
}

// Validate checks the configuration when authentication is enabled.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := c.JWT.Validate(); err != nil {
		return fmt.Errorf("auth.jwt: %w", err)
	}
	return nil
}

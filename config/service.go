package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/svcerrors/auth"
	"github.com/kbukum/svcerrors/logger"
	"github.com/kbukum/svcerrors/observability"
	"github.com/kbukum/svcerrors/server"
)

// Environments accepted by ServiceConfig.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// ServiceConfig contains the configuration every service built on this
// module needs. Projects embed it in their own config structs:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Billing BillingConfig `yaml:"billing" mapstructure:"billing"`
//	}
type ServiceConfig struct {
	Name          string               `yaml:"name" mapstructure:"name"`
	Environment   string               `yaml:"environment" mapstructure:"environment"`
	Version       string               `yaml:"version" mapstructure:"version"`
	Debug         bool                 `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Errors        ErrorsConfig         `yaml:"errors" mapstructure:"errors"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
}

// ErrorsConfig controls how dispatched errors are rendered.
type ErrorsConfig struct {
	// ExposeDetails keeps Record details in client responses. Unset means
	// true everywhere except production.
	ExposeDetails *bool `yaml:"expose_details" mapstructure:"expose_details"`
}

// ApplyDefaults applies default values to the configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Environment == EnvDevelopment {
		c.Debug = true
	}
	if c.Errors.ExposeDetails == nil {
		expose := c.Environment != EnvProduction
		c.Errors.ExposeDetails = &expose
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults(c.Name, c.Version, c.Environment)
	c.Auth.ApplyDefaults()
}

// Validate validates the configuration.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{EnvDevelopment, EnvStaging, EnvProduction}
	if !slices.Contains(validEnvs, c.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("config.observability: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	return nil
}

// DetailsExposed reports whether error details reach clients. An unset
// expose_details follows the environment, so production hides details even
// when ApplyDefaults was never called.
func (c *ServiceConfig) DetailsExposed() bool {
	if c.Errors.ExposeDetails != nil {
		return *c.Errors.ExposeDetails
	}
	return c.Environment != EnvProduction
}

package client

import (
	"github.com/kbukum/restbase/endpoint"
	"github.com/kbukum/restbase/errors"
	"github.com/kbukum/restbase/transport"
	"github.com/kbukum/restbase/validation"
	"github.com/kbukum/restbase/version"
)

// DefaultContentType is sent when no explicit headers are configured.
const DefaultContentType = "application/json;charset=UTF-8"

// Config configures a Client. It is usually loaded from the "client" section
// of a config file.
type Config struct {
	// Name labels the client in logs. Defaults to "restbase".
	Name string `yaml:"name" mapstructure:"name"`

	BaseURL    string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	SandboxURL string `yaml:"sandbox_url" mapstructure:"sandbox_url" validate:"omitempty,url"`

	// Environment is PRODUCTION or SANDBOX. Any value other than SANDBOX
	// means production.
	Environment Environment `yaml:"environment" mapstructure:"environment"`

	ContentType string `yaml:"content_type" mapstructure:"content_type"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers, when non-empty, replace the Content-Type/User-Agent defaults.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	Endpoints endpoint.Registry `yaml:"endpoints" mapstructure:"endpoints"`

	Transport transport.Config `yaml:"transport" mapstructure:"transport"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "restbase"
	}
	c.Environment = ParseEnvironment(string(c.Environment))
	if c.ContentType == "" {
		c.ContentType = DefaultContentType
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	c.Transport.ApplyDefaults()
}

// Validate checks the base URLs and the transport settings. Endpoint
// templates are not checked here; see endpoint.Registry.Validate.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return errors.InvalidConfig("client", appErr.Message).WithDetails(appErr.Details)
		}
		return err
	}

	v := validation.New().
		AbsoluteURL("base_url", c.BaseURL).
		Custom(!c.Environment.IsSandbox() || c.SandboxURL != "", "sandbox_url", "is required when environment is SANDBOX")
	if c.SandboxURL != "" {
		v.AbsoluteURL("sandbox_url", c.SandboxURL)
	}
	if appErr := v.Validate(); appErr != nil {
		return errors.InvalidConfig("client", appErr.Message).WithDetails(appErr.Details)
	}

	return c.Transport.Validate()
}

// BaseURLs returns the base URL pair carried by the config.
func (c *Config) BaseURLs() BaseURLConfig {
	return BaseURLConfig{BaseURL: c.BaseURL, SandboxURL: c.SandboxURL}
}

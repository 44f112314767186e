package transport

import (
	"time"

	"github.com/kbukum/restbase/errors"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultRetryMax     = 3
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 10 * time.Second
)

// Config configures the default transport.
type Config struct {
	// Timeout bounds one round trip including redirects and body read.
	// Defaults to 30s. Callers can impose tighter limits through the context.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Retry enables transport-level retries. Nil disables them.
	Retry *RetryConfig `yaml:"retry" mapstructure:"retry"`

	// RateLimit throttles outgoing requests. Nil disables it.
	RateLimit *RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// RetryConfig configures go-retryablehttp.
type RetryConfig struct {
	// Max is the maximum number of retries. Defaults to 3.
	Max int `yaml:"max" mapstructure:"max"`
	// WaitMin is the minimum backoff. Defaults to 500ms.
	WaitMin time.Duration `yaml:"wait_min" mapstructure:"wait_min"`
	// WaitMax is the maximum backoff. Defaults to 10s.
	WaitMax time.Duration `yaml:"wait_max" mapstructure:"wait_max"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry != nil {
		if c.Retry.Max <= 0 {
			c.Retry.Max = defaultRetryMax
		}
		if c.Retry.WaitMin <= 0 {
			c.Retry.WaitMin = defaultRetryWaitMin
		}
		if c.Retry.WaitMax <= 0 {
			c.Retry.WaitMax = defaultRetryWaitMax
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.InvalidConfig("transport.timeout", "timeout must be positive")
	}
	if c.Retry != nil && c.Retry.WaitMin > c.Retry.WaitMax {
		return errors.InvalidConfig("transport.retry", "wait_min must not exceed wait_max")
	}
	if c.RateLimit != nil && c.RateLimit.Rate <= 0 {
		return errors.InvalidConfig("transport.rate_limit", "rate must be positive")
	}
	return c.TLS.Validate()
}

package commands

import (
	"context"

	"github.com/kbukum/restbase/auth"
	"github.com/kbukum/restbase/client"
	"github.com/kbukum/restbase/config"
	"github.com/kbukum/restbase/endpoint"
	"github.com/kbukum/restbase/logger"
	"github.com/kbukum/restbase/observability"
	"github.com/kbukum/restbase/version"
)

const serviceName = "restcall"

// AppConfig is the restcall configuration file layout.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Client        client.Config        `yaml:"client" mapstructure:"client"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills in defaults for every section.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Client.Name == "" {
		c.Client.Name = c.Name
	}
}

// Validate checks the service section. The client section is validated when
// the client is built.
func (c *AppConfig) Validate() error {
	return c.ServiceConfig.Validate()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *GlobalOptions) (*AppConfig, error) {
	var cfg AppConfig
	var loaderOpts []config.LoaderOption
	if opts.ConfigFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.ConfigFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, loaderOpts...); err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.EndpointsFile != "" {
		reg, err := endpoint.LoadFile(opts.EndpointsFile)
		if err != nil {
			return nil, err
		}
		cfg.Client.Endpoints = reg
	}
	if opts.Sandbox {
		cfg.Client.Environment = client.Sandbox
	}
	return &cfg, nil
}

// session is a configured client plus the hooks to release it.
type session struct {
	cfg      *AppConfig
	client   *client.Client
	shutdown func(context.Context) error
}

func (s *session) Close(ctx context.Context) {
	if err := s.shutdown(ctx); err != nil {
		logger.Warn("observability shutdown failed", logger.Fields(logger.FieldError, err.Error()))
	}
}

// openSession loads configuration, initializes logging and telemetry and
// builds the client.
func openSession(ctx context.Context, opts *GlobalOptions) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging)
	logger.RegisterDefaults()

	shutdown, err := observability.Setup(ctx, cfg.Observability, cfg.Name, version.Version, cfg.Environment)
	if err != nil {
		return nil, err
	}

	authn, err := cfg.Auth.Build(ctx)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	c, err := client.New(cfg.Client, client.WithAuth(authn))
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return &session{cfg: cfg, client: c, shutdown: shutdown}, nil
}

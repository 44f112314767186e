package client

import (
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restbase/auth"
	"github.com/kbukum/restbase/endpoint"
	"github.com/kbukum/restbase/logger"
	"github.com/kbukum/restbase/observability"
	"github.com/kbukum/restbase/transport"
)

// Client dispatches named endpoint calls. All getters and setters are safe
// for concurrent use with each other and with in-flight calls.
type Client struct {
	mu          sync.RWMutex
	endpoints   endpoint.Registry
	urls        BaseURLConfig
	env         Environment
	headers     map[string]string
	contentType string
	userAgent   string
	auth        auth.Authenticator

	name    string
	doer    transport.Doer
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.ClientMetrics
}

// New builds a Client from cfg. Unless WithTransport is given, the transport
// is built from cfg.Transport.
func New(cfg Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.endpoints != nil {
		cfg.Endpoints = o.endpoints
	}
	if o.env != nil {
		cfg.Environment = *o.env
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var log *logger.Logger
	if o.log != nil {
		log = o.log.WithComponent(logger.ComponentClient)
	} else {
		log = logger.Get(logger.ComponentClient)
	}
	log = log.WithFields(logger.Fields("client", cfg.Name))

	doer := o.doer
	if doer == nil {
		hc, err := transport.New(cfg.Transport, o.log)
		if err != nil {
			return nil, err
		}
		doer = hc
	}

	metrics, err := observability.NewClientMetrics(observability.Meter(o.meter))
	if err != nil {
		return nil, err
	}

	endpoints := cfg.Endpoints
	if endpoints == nil {
		endpoints = endpoint.Registry{}
	}

	c := &Client{
		endpoints:   endpoints,
		urls:        cfg.BaseURLs(),
		env:         cfg.Environment,
		contentType: cfg.ContentType,
		userAgent:   cfg.UserAgent,
		auth:        o.auth,
		name:        cfg.Name,
		doer:        doer,
		log:         log,
		tracer:      observability.Tracer(o.tracer),
		metrics:     metrics,
	}
	c.headers = copyHeaders(cfg.Headers)

	log.Debug("client created", logger.Fields(
		"environment", c.env.String(),
		"base_url", c.urls.Root(c.env),
		"endpoints", len(endpoints),
	))
	return c, nil
}

// Name returns the client's label.
func (c *Client) Name() string { return c.name }

// Endpoints returns the registry itself, not a copy. Mutating it while calls
// are in flight is a data race; use SetEndpoints to swap registries.
func (c *Client) Endpoints() endpoint.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoints
}

// SetEndpoints replaces the registry as a whole. No template is validated.
func (c *Client) SetEndpoints(r endpoint.Registry) {
	if r == nil {
		r = endpoint.Registry{}
	}
	c.mu.Lock()
	c.endpoints = r
	c.mu.Unlock()
}

// BaseURLConfig returns the production and sandbox base URLs.
func (c *Client) BaseURLConfig() BaseURLConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.urls
}

// SetBaseURLConfig replaces both base URLs.
func (c *Client) SetBaseURLConfig(b BaseURLConfig) {
	c.mu.Lock()
	c.urls = b
	c.mu.Unlock()
}

// Environment returns the environment requests are routed to.
func (c *Client) Environment() Environment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.env
}

// SetEnvironment switches between production and sandbox.
func (c *Client) SetEnvironment(env Environment) {
	c.mu.Lock()
	c.env = ParseEnvironment(string(env))
	c.mu.Unlock()
}

// Headers returns the headers sent with every request: the explicit set if
// one was configured, otherwise Content-Type and User-Agent built from the
// current ContentType and UserAgent. The result is a fresh map.
func (c *Client) Headers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headersLocked()
}

func (c *Client) headersLocked() map[string]string {
	if len(c.headers) > 0 {
		return copyHeaders(c.headers)
	}
	return map[string]string{
		"Content-Type": c.contentType,
		"User-Agent":   c.userAgent,
	}
}

// SetHeaders sets the explicit header set. An empty map restores the
// computed defaults.
func (c *Client) SetHeaders(h map[string]string) {
	c.mu.Lock()
	c.headers = copyHeaders(h)
	c.mu.Unlock()
}

// ContentType returns the default Content-Type.
func (c *Client) ContentType() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contentType
}

// SetContentType changes the default Content-Type.
func (c *Client) SetContentType(ct string) {
	c.mu.Lock()
	c.contentType = ct
	c.mu.Unlock()
}

// UserAgent returns the default User-Agent.
func (c *Client) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userAgent
}

// SetUserAgent changes the default User-Agent.
func (c *Client) SetUserAgent(ua string) {
	c.mu.Lock()
	c.userAgent = ua
	c.mu.Unlock()
}

// Auth returns the authenticator, or nil.
func (c *Client) Auth() auth.Authenticator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth
}

// SetAuth replaces the authenticator. nil disables authentication.
func (c *Client) SetAuth(a auth.Authenticator) {
	c.mu.Lock()
	c.auth = a
	c.mu.Unlock()
}

// snapshot is the per-call view of the mutable client state.
type snapshot struct {
	urls    BaseURLConfig
	env     Environment
	headers map[string]string
	auth    auth.Authenticator
}

func (c *Client) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot{
		urls:    c.urls,
		env:     c.env,
		headers: c.headersLocked(),
		auth:    c.auth,
	}
}

func copyHeaders(h map[string]string) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

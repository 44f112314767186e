package transport

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/kbukum/restbase/logger"
)

// Doer sends one HTTP request and returns its response. *http.Client
// satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New builds an *http.Client from cfg. When cfg.Retry is set the client is
// backed by go-retryablehttp, which logs through log (or the registered
// "restbase.transport" logger when log is nil).
func New(cfg Config, log *logger.Logger) (*http.Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		base.TLSClientConfig = tlsCfg
	}

	var rt http.RoundTripper = base
	if cfg.RateLimit != nil {
		rt = &rateLimitedTransport{next: base, lim: newLimiter(*cfg.RateLimit)}
	}

	if cfg.Retry == nil {
		return &http.Client{Transport: rt, Timeout: cfg.Timeout}, nil
	}

	if log == nil {
		log = logger.Get(logger.ComponentTransport)
	} else {
		log = log.WithComponent(logger.ComponentTransport)
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: rt, Timeout: cfg.Timeout}
	rc.RetryMax = cfg.Retry.Max
	rc.RetryWaitMin = cfg.Retry.WaitMin
	rc.RetryWaitMax = cfg.Retry.WaitMax
	rc.Logger = log.Leveled()
	// Hand the last response back untouched instead of a "giving up" error.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return rc.StandardClient(), nil
}

package transport

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitConfig caps the request rate with a token bucket. Every attempt,
// including retries, takes one token.
type RateLimitConfig struct {
	// Rate is the number of requests allowed per second.
	Rate float64 `yaml:"rate" mapstructure:"rate"`
	// Burst is the bucket size. Defaults to max(1, Rate).
	Burst int `yaml:"burst" mapstructure:"burst"`
}

func newLimiter(cfg RateLimitConfig) *rate.Limiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(int(cfg.Rate), 1)
	}
	return rate.NewLimiter(rate.Limit(cfg.Rate), burst)
}

type rateLimitedTransport struct {
	next http.RoundTripper
	lim  *rate.Limiter
}

// RoundTrip waits for a token, honoring the request context, then forwards.
func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := t.lim.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// The token would only arrive after the request deadline.
		return nil, fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return t.next.RoundTrip(req)
}

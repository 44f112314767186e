package client

import (
	"context"
	"net/http"

	"github.com/kbukum/restbase/errors"
	"github.com/kbukum/restbase/logger"
)

// Func sends one request for a bound endpoint.
type Func func(ctx context.Context, opts ...CallOption) (*http.Response, error)

// Endpoint returns a Func for the endpoint registered under name. An absent
// name, or one registered with a zero template, yields an UNKNOWN_ENDPOINT
// error listing every registered name.
//
// The Func is bound to the template as it was at lookup time; later
// SetEndpoints calls do not affect it.
func (c *Client) Endpoint(name string) (Func, error) {
	c.mu.RLock()
	tmpl, ok := c.endpoints.Lookup(name)
	if !ok || tmpl.IsZero() {
		names := c.endpoints.Names()
		c.mu.RUnlock()
		return nil, errors.UnknownEndpoint(name, names)
	}
	c.mu.RUnlock()

	return func(ctx context.Context, opts ...CallOption) (*http.Response, error) {
		return c.send(ctx, name, tmpl, newCall(opts))
	}, nil
}

// Invoke looks up name and calls it.
func (c *Client) Invoke(ctx context.Context, name string, opts ...CallOption) (*http.Response, error) {
	fn, err := c.Endpoint(name)
	if err != nil {
		c.log.Debug("endpoint lookup failed", logger.ErrorFields(name, err))
		return nil, err
	}
	return fn(ctx, opts...)
}

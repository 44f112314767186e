package client

import (
	"fmt"
	"net/url"
	"reflect"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restbase/auth"
	"github.com/kbukum/restbase/endpoint"
	"github.com/kbukum/restbase/logger"
	"github.com/kbukum/restbase/transport"
)

// Option customizes a Client at construction.
type Option func(*options)

type options struct {
	auth      auth.Authenticator
	doer      transport.Doer
	log       *logger.Logger
	endpoints endpoint.Registry
	env       *Environment
	tracer    trace.TracerProvider
	meter     metric.MeterProvider
}

// WithAuth sets the authenticator applied to every request.
func WithAuth(a auth.Authenticator) Option {
	return func(o *options) { o.auth = a }
}

// WithTransport sends requests through d instead of a transport built from
// Config.Transport.
func WithTransport(d transport.Doer) Option {
	return func(o *options) { o.doer = d }
}

// WithLogger sets the logger for the client and its default transport.
// Defaults to the "restbase.client" logger from the logger registry.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithEndpoints replaces Config.Endpoints.
func WithEndpoints(r endpoint.Registry) Option {
	return func(o *options) { o.endpoints = r }
}

// WithEnvironment overrides Config.Environment.
func WithEnvironment(env Environment) Option {
	return func(o *options) { o.env = &env }
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meter = mp }
}

// CallOption shapes a single endpoint call.
type CallOption func(*call)

type call struct {
	args    []any
	params  url.Values
	body    map[string]any
	headers map[string]string
}

func newCall(opts []CallOption) *call {
	c := &call{params: url.Values{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PathArgs appends positional values for the path placeholders.
func PathArgs(args ...any) CallOption {
	return func(c *call) { c.args = append(c.args, args...) }
}

// Param adds a query parameter. Slice and array values add one entry per
// element; everything else is rendered with fmt.Sprint. Nil values and nil
// pointers are skipped, non-nil pointers send the value they point to.
func Param(key string, value any) CallOption {
	return func(c *call) { addParam(c.params, key, value) }
}

// Params adds every entry of m as a query parameter, as Param does.
func Params(m map[string]any) CallOption {
	return func(c *call) {
		for k, v := range m {
			addParam(c.params, k, v)
		}
	}
}

// Body sets fields of the JSON request body. It is only sent for POST, PUT
// and PATCH requests.
func Body(m map[string]any) CallOption {
	return func(c *call) {
		if c.body == nil {
			c.body = make(map[string]any, len(m))
		}
		for k, v := range m {
			c.body[k] = v
		}
	}
}

// Headers replaces the client's headers for this call only. Authentication
// is still applied on top.
func Headers(h map[string]string) CallOption {
	return func(c *call) {
		if h == nil {
			return
		}
		c.headers = make(map[string]string, len(h))
		for k, v := range h {
			c.headers[k] = v
		}
	}
}

func addParam(q url.Values, key string, value any) {
	rv, ok := deref(reflect.ValueOf(value))
	if !ok {
		return
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < rv.Len(); i++ {
			if ev, ok := deref(rv.Index(i)); ok {
				q.Add(key, fmt.Sprint(ev.Interface()))
			}
		}
		return
	}
	q.Add(key, fmt.Sprint(rv.Interface()))
}

// deref follows pointers and interfaces. ok is false for nil values, which
// are left off the query.
func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

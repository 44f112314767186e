package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/restbase/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment.
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP to the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns the restbase meter from mp, or from the global provider when
// mp is nil.
func Meter(mp metric.MeterProvider) metric.Meter {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	return mp.Meter(InstrumentationName)
}

// ClientMetrics holds the instruments recorded for each endpoint call.
type ClientMetrics struct {
	callTotal    metric.Int64Counter
	callDuration metric.Float64Histogram
	errorTotal   metric.Int64Counter
}

// NewClientMetrics creates the call instruments on meter.
func NewClientMetrics(meter metric.Meter) (*ClientMetrics, error) {
	callTotal, err := meter.Int64Counter("restbase.client.calls",
		metric.WithDescription("Endpoint calls sent by restbase clients"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restbase.client.calls counter: %w", err)
	}

	callDuration, err := meter.Float64Histogram("restbase.client.call.duration",
		metric.WithDescription("Round-trip time of endpoint calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restbase.client.call.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("restbase.client.errors",
		metric.WithDescription("Endpoint calls that failed before a response was received"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restbase.client.errors counter: %w", err)
	}

	return &ClientMetrics{
		callTotal:    callTotal,
		callDuration: callDuration,
		errorTotal:   errorTotal,
	}, nil
}

// RecordCall records one endpoint call. status is 0 when err is non-nil.
func (m *ClientMetrics) RecordCall(ctx context.Context, endpoint, method string, status int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
	}
	if err != nil {
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
		return
	}
	m.callTotal.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("status", strconv.Itoa(status)))...))
	m.callDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

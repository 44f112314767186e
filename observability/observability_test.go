package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestClientMetrics_RecordCall(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewClientMetrics(Meter(mp))
	if err != nil {
		t.Fatalf("NewClientMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordCall(ctx, "get_user", "GET", 200, 15*time.Millisecond, nil)
	m.RecordCall(ctx, "get_user", "GET", 404, 5*time.Millisecond, nil)
	m.RecordCall(ctx, "get_user", "GET", 0, 0, errors.New("dial tcp: refused"))

	got := collect(t, reader)

	calls, ok := got["restbase.client.calls"].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("calls metric missing: %v", got)
	}
	var total int64
	for _, dp := range calls.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("expected 2 calls, got %d", total)
	}

	errs, ok := got["restbase.client.errors"].Data.(metricdata.Sum[int64])
	if !ok || len(errs.DataPoints) != 1 || errs.DataPoints[0].Value != 1 {
		t.Errorf("expected 1 error, got %+v", got["restbase.client.errors"].Data)
	}

	hist, ok := got["restbase.client.call.duration"].Data.(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 2 {
		t.Errorf("expected 2 duration samples, got %+v", got["restbase.client.call.duration"].Data)
	}
}

func TestClientMetrics_NilSafe(t *testing.T) {
	var m *ClientMetrics
	m.RecordCall(context.Background(), "x", "GET", 200, time.Millisecond, nil)
}

func TestTracer_UsesProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := Tracer(tp).Start(context.Background(), "get_user")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].InstrumentationScope().Name != InstrumentationName {
		t.Errorf("unexpected scope %q", spans[0].InstrumentationScope().Name)
	}
}

func TestTracer_NilFallsBackToGlobal(t *testing.T) {
	if Tracer(nil) == nil {
		t.Fatal("expected global tracer")
	}
	if Meter(nil) == nil {
		t.Fatal("expected global meter")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); got != tt.want {
			t.Errorf("sampler(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestDefaultConfigs(t *testing.T) {
	tc := DefaultTracerConfig("svc")
	if tc.ServiceName != "svc" || tc.Endpoint != "localhost:4318" || tc.SampleRate != 1.0 {
		t.Errorf("unexpected tracer defaults %+v", tc)
	}
	mc := DefaultMeterConfig("svc")
	if mc.Interval != 15*time.Second {
		t.Errorf("unexpected meter interval %v", mc.Interval)
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, "svc", "v", "dev")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	c := Config{Enabled: true}
	c.ApplyDefaults()
	if c.Endpoint != "localhost:4318" || c.SampleRate != 1.0 || c.Interval != 15*time.Second {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("svc", "1.0.0", "test")
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if string(kv.Key) == "service.name" && kv.Value.AsString() == "svc" {
			found = true
		}
	}
	if !found {
		t.Error("service.name attribute missing")
	}
}

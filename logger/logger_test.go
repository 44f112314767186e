package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json", Output: "stdout"}
	if l := New(cfg, "test"); l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-svc"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug").WithComponent("restbase.client")
	l.Debug("dispatching", Fields(FieldEndpoint, "get_user", FieldMethod, "GET"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "dispatching" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldComponent] != "restbase.client" {
		t.Errorf("unexpected component %v", entry[FieldComponent])
	}
	if entry[FieldEndpoint] != "get_user" {
		t.Errorf("unexpected endpoint %v", entry[FieldEndpoint])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got %q", buf.String())
	}
	if l.DebugEnabled() {
		t.Error("DebugEnabled should be false at info level")
	}
	l.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info entry, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing happens")
	if l.DebugEnabled() {
		t.Error("nop logger should not report debug enabled")
	}
}

func TestWithContext_NoSpan(t *testing.T) {
	l := NewDefault("test")
	if got := l.WithContext(context.Background()); got != l {
		t.Error("expected the same logger when ctx has no span")
	}
}

func TestWithContext_Span(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l.WithContext(ctx).Info("traced")
	if !strings.Contains(buf.String(), traceID.String()) {
		t.Errorf("expected trace id in %q", buf.String())
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	l.WithFields(map[string]interface{}{"k": "v"}).WithError(errors.New("boom")).Warn("careful")
	out := buf.String()
	if !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, `"error":"boom"`) {
		t.Errorf("missing fields in %q", out)
	}
}

func TestInitAndGlobal(t *testing.T) {
	defer SetGlobalLogger(nil)
	Init(Config{Level: "warn", Format: "json", ServiceName: "restcall"})
	if GetGlobalLogger().service != "restcall" {
		t.Errorf("expected service restcall, got %q", GetGlobalLogger().service)
	}
	Debug("not shown")
	Info("not shown")
	Warn("shown")
	Error("shown")
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"pretty", Config{Level: "info", Format: "pretty"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("registered")
	Register("custom", l)
	if Get("custom") != l {
		t.Error("expected registered logger")
	}
	if Get("unregistered-component") == nil {
		t.Error("expected fallback logger")
	}
	RegisterDefaults("a", "b")
	if Get("a") == nil {
		t.Error("expected default-registered logger")
	}
}

func TestRegisterDefaults_Components(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(NewWithWriter(&buf, "info"))
	t.Cleanup(func() { SetGlobalLogger(nil) })

	RegisterDefaults()
	registered := Registered()
	for _, name := range Components {
		if !contains(registered, name) {
			t.Errorf("expected %s in %v", name, registered)
		}
	}

	Get(ComponentTransport).Info("retrying")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	if entry[FieldComponent] != ComponentTransport {
		t.Errorf("expected component %s, got %v", ComponentTransport, entry[FieldComponent])
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(f) != 2 || f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields %v", f)
	}

	ef := ErrorFields("get_user", errors.New("fail"))
	if ef[FieldEndpoint] != "get_user" || ef[FieldError] != "fail" {
		t.Errorf("unexpected error fields %v", ef)
	}

	df := DurationFields("get_user", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration %v", df[FieldDuration])
	}

	m := MergeWithError(nil, errors.New("x"))
	if m[FieldError] != "x" {
		t.Errorf("unexpected merge %v", m)
	}
}

func TestLeveledAdapter(t *testing.T) {
	var buf bytes.Buffer
	lv := NewWithWriter(&buf, "debug").Leveled()
	lv.Debug("performing request", "method", "GET", "url", "http://x")
	lv.Info("i")
	lv.Warn("w")
	lv.Error("e", "err", "boom")
	out := buf.String()
	if !strings.Contains(out, `"method":"GET"`) || !strings.Contains(out, `"err":"boom"`) {
		t.Errorf("unexpected leveled output %q", out)
	}
}

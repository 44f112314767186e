package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/restbase/errors"
	"github.com/kbukum/restbase/logger"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "restcall"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug log level, got %q", cfg.Logging.Level)
		}
		if cfg.Logging.ServiceName != "restcall" {
			t.Errorf("expected service name propagated, got %q", cfg.Logging.ServiceName)
		}
	})

	t.Run("production keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "restcall", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info log level, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, false},
		{"valid staging", ServiceConfig{Name: "svc", Environment: "staging"}, false},
		{"missing name", ServiceConfig{Environment: "production"}, true},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "invalid"}, true},
		{"invalid log level", ServiceConfig{Name: "svc", Environment: "production", Logging: logLevel("loud")}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.IsAppError(err) {
					t.Errorf("expected AppError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

type testConfig struct {
	ServiceConfig `mapstructure:",squash"`
	Client        struct {
		BaseURL     string        `mapstructure:"base_url"`
		Environment string        `mapstructure:"environment"`
		Timeout     time.Duration `mapstructure:"timeout"`
	} `mapstructure:"client"`
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: restcall
environment: staging
client:
  base_url: https://api.example.com/
  environment: PRODUCTION
  timeout: 5s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("restcall", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "restcall" {
		t.Errorf("expected name 'restcall', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Client.BaseURL != "https://api.example.com/" {
		t.Errorf("unexpected base url %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Client.Timeout)
	}
}

func TestLoadConfigEnvOverridesNestedKey(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: restcall
client:
  base_url: https://api.example.com/
  environment: PRODUCTION
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("CLIENT_ENVIRONMENT", "SANDBOX")

	var cfg testConfig
	if err := LoadConfig("restcall", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Client.Environment != "SANDBOX" {
		t.Errorf("expected env override SANDBOX, got %q", cfg.Client.Environment)
	}
	if cfg.Client.BaseURL != "https://api.example.com/" {
		t.Errorf("section should survive env binding, got %q", cfg.Client.BaseURL)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	err := LoadConfig("restcall", &cfg, WithConfigFile(configPath))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/my-svc/config.yml": true,
		"cmd/my-svc/.env":         true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != "./cmd/my-svc/config.yml" {
		t.Errorf("expected config file at ./cmd/my-svc/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "cmd/my-svc/.env" {
		t.Errorf("expected env file at cmd/my-svc/.env, got %q", files.EnvFile)
	}
}

func TestResolverPrefersServiceEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		".env":          true,
		".env.restcall": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("restcall", LoaderConfig{})
	if files.EnvFile != ".env.restcall" {
		t.Errorf("expected .env.restcall, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("svc", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("explicit paths should win, got %+v", files)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
func (m *mockFS) Getwd() (string, error)    { return "/mock", nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("CLIENT_BASE_URL")
	want := map[string]bool{"client_base_url": true, "client.base.url": true, "client.base_url": true}
	for _, v := range got {
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing variants %v in %v", want, got)
	}
}

func logLevel(level string) logger.Config {
	return logger.Config{Level: level}
}

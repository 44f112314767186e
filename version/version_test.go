package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestUserAgent(t *testing.T) {
	defer saveAndRestore()()

	Version = "dev"
	if got := UserAgent(); got != "restbase-client-dev" {
		t.Errorf("expected restbase-client-dev, got %q", got)
	}
	Version = "1.4.0"
	if got := UserAgent(); got != "restbase-client-1.4.0" {
		t.Errorf("expected restbase-client-1.4.0, got %q", got)
	}
}

func TestGetUsesLinkedValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.0.0"
	GitCommit = "abcdef0123456"
	BuildTime = "2026-01-02T03:04:05Z"

	info := Get()
	if info.Version != "2.0.0" {
		t.Errorf("expected version 2.0.0, got %q", info.Version)
	}
	if info.GitCommit != "abcdef0" {
		t.Errorf("expected truncated commit, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
	if !info.IsRelease() {
		t.Error("stamped version should be a release")
	}
}

func TestInfoShortAndString(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true, BuildTime: "2026-01-01T00:00:00Z", GoVersion: "go1.25.0"}

	if got := info.Short(); got != "1.0.0-abc1234-dirty" {
		t.Errorf("unexpected short version %q", got)
	}
	s := info.String()
	if !strings.Contains(s, "(built 2026-01-01T00:00:00Z)") || !strings.HasSuffix(s, "go1.25.0") {
		t.Errorf("unexpected string %q", s)
	}
}

func TestInfoIsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"dev", false},
		{"1.0.0", true},
		{"1.0.0-dirty", false},
	}
	for _, tt := range tests {
		if got := (Info{Version: tt.version}).IsRelease(); got != tt.want {
			t.Errorf("IsRelease(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

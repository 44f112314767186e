package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/restbase/errors"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"SANDBOX", Sandbox},
		{"PRODUCTION", Production},
		{"", Production},
		{"sandbox", Production},
		{"staging", Production},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEnvironment(tt.in))
		})
	}
}

func TestEnvironment_String(t *testing.T) {
	assert.Equal(t, "SANDBOX", Sandbox.String())
	assert.Equal(t, "PRODUCTION", Production.String())
	assert.Equal(t, "PRODUCTION", Environment("").String())
}

func TestBaseURLConfig_Resolve(t *testing.T) {
	urls := BaseURLConfig{
		BaseURL:    "https://api.example.com/",
		SandboxURL: "https://sandbox.example.com/",
	}

	tests := []struct {
		name string
		urls BaseURLConfig
		env  Environment
		path string
		want string
	}{
		{"production", urls, Production, "v1/ping", "https://api.example.com/v1/ping"},
		{"sandbox", urls, Sandbox, "v1/ping", "https://sandbox.example.com/v1/ping"},
		{"leading slashes dropped", urls, Production, "//v1/ping", "https://api.example.com/v1/ping"},
		{"base without trailing slash", BaseURLConfig{BaseURL: "https://api.example.com/v2"}, Production, "/users/1", "https://api.example.com/v2/users/1"},
		{"base with prefix", BaseURLConfig{BaseURL: "https://api.example.com/v2/"}, Production, "users", "https://api.example.com/v2/users"},
		{"query kept", urls, Production, "/search?q=go", "https://api.example.com/search?q=go"},
		{"empty path", urls, Production, "", "https://api.example.com/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.urls.Resolve(tt.env, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseURLConfig_ResolveDeterministic(t *testing.T) {
	urls := BaseURLConfig{BaseURL: "https://a.example.com/", SandboxURL: "https://b.example.com/"}
	for i := 0; i < 3; i++ {
		got, err := urls.Resolve(Sandbox, "/x")
		require.NoError(t, err)
		assert.Equal(t, "https://b.example.com/x", got)
	}
}

func TestBaseURLConfig_ResolveErrors(t *testing.T) {
	_, err := BaseURLConfig{BaseURL: "http://bad host/"}.Resolve(Production, "x")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig), "got %v", err)

	_, err = BaseURLConfig{BaseURL: "https://api.example.com/"}.Resolve(Production, "a%zz")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput), "got %v", err)
}

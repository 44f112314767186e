package client

import (
	"net/url"
	"strings"

	"github.com/kbukum/restbase/errors"
)

// Environment selects which base URL requests are sent to.
type Environment string

const (
	// Production sends requests to BaseURL.
	Production Environment = "PRODUCTION"
	// Sandbox sends requests to SandboxURL.
	Sandbox Environment = "SANDBOX"
)

// ParseEnvironment maps s to an Environment. Only the exact string "SANDBOX"
// selects Sandbox; everything else, including "" and "sandbox", is Production.
func ParseEnvironment(s string) Environment {
	if s == string(Sandbox) {
		return Sandbox
	}
	return Production
}

// IsSandbox reports whether e is Sandbox.
func (e Environment) IsSandbox() bool { return e == Sandbox }

// String returns "PRODUCTION" or "SANDBOX".
func (e Environment) String() string {
	return string(ParseEnvironment(string(e)))
}

// BaseURLConfig holds the two base URLs a client can target.
type BaseURLConfig struct {
	BaseURL    string `yaml:"base_url" mapstructure:"base_url"`
	SandboxURL string `yaml:"sandbox_url" mapstructure:"sandbox_url"`
}

// Root returns the base URL for env.
func (b BaseURLConfig) Root(env Environment) string {
	if env.IsSandbox() {
		return b.SandboxURL
	}
	return b.BaseURL
}

// Resolve joins path onto the base URL for env. Leading slashes are dropped
// from path and the base is given a trailing slash, so the path is always
// resolved relative to the full base, including any path prefix it carries.
func (b BaseURLConfig) Resolve(env Environment, path string) (string, error) {
	root := b.Root(env)
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	base, err := url.Parse(root)
	if err != nil {
		field := "base_url"
		if env.IsSandbox() {
			field = "sandbox_url"
		}
		return "", errors.InvalidConfig(field, err.Error()).WithCause(err)
	}

	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", errors.InvalidInput("path", err.Error()).WithCause(err)
	}
	return base.ResolveReference(ref).String(), nil
}

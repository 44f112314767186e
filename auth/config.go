package auth

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/kbukum/restbase/errors"
)

// Config selects and configures an authenticator from configuration files.
//
//	auth:
//	  type: bearer
//	  token: ${API_TOKEN}
type Config struct {
	// Type is one of none, bearer, basic, api_key, jwt, oauth2. Empty means none.
	Type string `yaml:"type" mapstructure:"type"`

	Token    string `yaml:"token" mapstructure:"token"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	Key string `yaml:"key" mapstructure:"key"`
	// In is "header" (default) or "query".
	In string `yaml:"in" mapstructure:"in"`
	// Name is the header or query parameter carrying Key.
	Name string `yaml:"name" mapstructure:"name"`

	JWT    JWTConfig    `yaml:"jwt" mapstructure:"jwt"`
	OAuth2 OAuth2Config `yaml:"oauth2" mapstructure:"oauth2"`
}

// OAuth2Config configures the client credentials grant.
type OAuth2Config struct {
	TokenURL     string   `yaml:"token_url" mapstructure:"token_url"`
	ClientID     string   `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string   `yaml:"client_secret" mapstructure:"client_secret"`
	Scopes       []string `yaml:"scopes" mapstructure:"scopes"`
}

// Build returns the configured authenticator, or nil for type none. ctx is
// used by the OAuth2 token source for token requests.
func (c Config) Build(ctx context.Context) (Authenticator, error) {
	switch strings.ToLower(c.Type) {
	case "", "none":
		return nil, nil
	case "bearer":
		if c.Token == "" {
			return nil, errors.MissingField("auth.token")
		}
		return Bearer(c.Token), nil
	case "basic":
		if c.Username == "" {
			return nil, errors.MissingField("auth.username")
		}
		return Basic(c.Username, c.Password), nil
	case "api_key":
		if c.Key == "" {
			return nil, errors.MissingField("auth.key")
		}
		if c.In == "query" {
			return APIKeyQuery(c.Key, c.Name), nil
		}
		return APIKeyHeader(c.Key, c.Name), nil
	case "jwt":
		signer, err := JWT(c.JWT)
		if err != nil {
			return nil, err
		}
		return signer, nil
	case "oauth2":
		if c.OAuth2.TokenURL == "" || c.OAuth2.ClientID == "" {
			return nil, errors.MissingField("auth.oauth2.token_url/client_id")
		}
		cc := clientcredentials.Config{
			ClientID:     c.OAuth2.ClientID,
			ClientSecret: c.OAuth2.ClientSecret,
			TokenURL:     c.OAuth2.TokenURL,
			Scopes:       c.OAuth2.Scopes,
		}
		return OAuth2(oauth2.ReuseTokenSource(nil, cc.TokenSource(ctx))), nil
	default:
		return nil, errors.InvalidConfig("auth.type", "unsupported auth type "+c.Type)
	}
}

package auth

import "net/http"

// Authenticator attaches credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request) error
}

// Func adapts a plain function to the Authenticator interface.
type Func func(req *http.Request) error

// Apply calls f(req).
func (f Func) Apply(req *http.Request) error { return f(req) }

// Scheme identifies a built-in authentication method.
type Scheme int

const (
	// SchemeNone disables authentication.
	SchemeNone Scheme = iota
	// SchemeBearer uses Bearer token authentication.
	SchemeBearer
	// SchemeBasic uses HTTP Basic authentication.
	SchemeBasic
	// SchemeAPIKey uses API key authentication (header or query parameter).
	SchemeAPIKey
	// SchemeCustom uses a custom request modifier.
	SchemeCustom
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeBearer:
		return "bearer"
	case SchemeBasic:
		return "basic"
	case SchemeAPIKey:
		return "api_key"
	case SchemeCustom:
		return "custom"
	default:
		return "none"
	}
}

// Static holds fixed credentials for one of the built-in schemes.
type Static struct {
	// Scheme is the authentication method.
	Scheme Scheme
	// Token is the bearer token (SchemeBearer).
	Token string
	// Username is the basic auth username (SchemeBasic).
	Username string
	// Password is the basic auth password (SchemeBasic).
	Password string
	// Key is the API key value (SchemeAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query".
	In string
	// Name is the header or query parameter name. Defaults to "X-API-Key".
	Name string
	// Modify is the request modifier (SchemeCustom).
	Modify func(*http.Request)
}

// Bearer creates a bearer token authenticator.
func Bearer(token string) *Static {
	return &Static{Scheme: SchemeBearer, Token: token}
}

// Basic creates a basic auth authenticator.
func Basic(username, password string) *Static {
	return &Static{Scheme: SchemeBasic, Username: username, Password: password}
}

// APIKey creates an API key authenticator sent via the X-API-Key header.
func APIKey(key string) *Static {
	return &Static{Scheme: SchemeAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyHeader creates an API key authenticator with a custom header name.
func APIKeyHeader(key, headerName string) *Static {
	return &Static{Scheme: SchemeAPIKey, Key: key, In: "header", Name: headerName}
}

// APIKeyQuery creates an API key authenticator sent as a query parameter.
func APIKeyQuery(key, paramName string) *Static {
	return &Static{Scheme: SchemeAPIKey, Key: key, In: "query", Name: paramName}
}

// Custom creates an authenticator from a request modifier.
func Custom(fn func(*http.Request)) *Static {
	return &Static{Scheme: SchemeCustom, Modify: fn}
}

// Apply attaches the configured credentials. A nil receiver is a no-op.
func (a *Static) Apply(req *http.Request) error {
	if a == nil {
		return nil
	}
	switch a.Scheme {
	case SchemeBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case SchemeBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case SchemeAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case SchemeCustom:
		if a.Modify != nil {
			a.Modify(req)
		}
	}
	return nil
}

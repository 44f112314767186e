package auth

import (
	"net/http"

	"golang.org/x/oauth2"

	"github.com/kbukum/restbase/errors"
)

// TokenSource attaches tokens obtained from an oauth2.TokenSource.
type TokenSource struct {
	src oauth2.TokenSource
}

// OAuth2 wraps src so each request carries a current access token. Wrap src
// in oauth2.ReuseTokenSource to cache tokens between calls.
func OAuth2(src oauth2.TokenSource) *TokenSource {
	return &TokenSource{src: src}
}

// Apply fetches a token and sets the Authorization header.
func (t *TokenSource) Apply(req *http.Request) error {
	tok, err := t.src.Token()
	if err != nil {
		return errors.AuthFailed("oauth2", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

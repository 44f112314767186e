// Package auth provides the credential attachers used by restbase clients.
//
// The client treats authentication as an opaque capability: anything that
// implements Authenticator can be plugged in. The package ships header-based
// schemes (Bearer, Basic, API key), an OAuth2 token source adapter and a JWT
// signer that mints a short-lived token for every request.
//
//	c, _ := client.New(cfg, client.WithAuth(auth.Bearer(os.Getenv("API_TOKEN"))))
package auth

// Package transport builds the HTTP round-tripper a restbase client sends its
// requests through.
//
// The client only depends on the Doer interface, so any *http.Client (or a
// test double) can be injected. New assembles a default one from Config: a
// cloned net/http transport with optional TLS settings, and, when Retry is
// configured, a go-retryablehttp client in front of it. Retries live here and
// only here; the client itself sends exactly one request per call.
package transport

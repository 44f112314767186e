// Package version holds build information for restbase binaries and the
// default User-Agent sent by clients.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/restbase/version.Version=1.2.0" ./cmd/restcall
package version

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Name identifies the transport in logs and errors.
	Name() string

	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil when the server was stopped by [Server.Shutdown].
	RunServer() error

	// Shutdown gracefully stops the server. When ctx expires first, the
	// remaining connections are closed forcibly and ctx's error is returned.
	Shutdown(ctx context.Context) error
}

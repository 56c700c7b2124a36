// Package server wires and runs the transport servers of the GraphQL server.
//
// It composes the store, service and handler layers, and owns the lifecycle
// of the GraphQL HTTP server, the healthcheck HTTP server and the optional
// gRPC health server: startup, signal handling and graceful shutdown.
package server

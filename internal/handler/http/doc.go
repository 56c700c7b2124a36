// Package http implements the HTTP transport layer of the GraphQL server.
//
// It exposes two routers: the GraphQL endpoint and the healthcheck endpoint,
// which also serves build information, the dapp deployment and Prometheus
// metrics. Request tracing, access logging and request metrics are applied
// as middleware before requests are delegated to the service layer.
package http

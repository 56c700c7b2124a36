package service

import "errors"

var (
	// ErrDeploymentNotConfigured is returned by [DeploymentService] when the
	// server was started without a dapp deployment file.
	ErrDeploymentNotConfigured = errors.New("dapp deployment is not configured")

	// ErrQueryExecutorNotConfigured is returned by [Services.Execute] when no
	// [QueryExecutor] was registered.
	ErrQueryExecutorNotConfigured = errors.New("graphql query executor is not configured")

	// ErrEmptyQuery is returned for a GraphQL request without a query.
	ErrEmptyQuery = errors.New("graphql query is empty")

	// ErrUnhealthy wraps the failure reported by a dependency health check.
	ErrUnhealthy = errors.New("service is unhealthy")
)

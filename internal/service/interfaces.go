package service

import (
	"context"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the server can answer queries.
type HealthService interface {
	// Check returns nil when every dependency is reachable.
	Check(ctx context.Context) error
}

// DeploymentService exposes the dapp deployment the server was started with.
type DeploymentService interface {
	// GetDeployment returns [ErrDeploymentNotConfigured] when no deployment
	// file was given.
	GetDeployment(ctx context.Context) (config.DappDeployment, error)
}

// QueryExecutor resolves GraphQL requests against the rollups schema. It is
// provided by the embedding application; the server only transports
// requests to it.
type QueryExecutor interface {
	Execute(ctx context.Context, request models.GraphQLRequest) (models.GraphQLResponse, error)
}

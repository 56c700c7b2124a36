package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/store"
	"github.com/rollups-offchain/node/models"
)

// Services is the service layer shared by every transport handler.
type Services struct {
	AppInfoService    AppInfoService
	HealthService     HealthService
	DeploymentService DeploymentService

	// QueryExecutor may be nil, in which case [Services.Execute] reports
	// [ErrQueryExecutorNotConfigured].
	QueryExecutor QueryExecutor
}

// NewServices builds the service layer on top of storages.
func NewServices(
	storages *store.Storages,
	cfg *config.GraphQLConfig,
	buildInfo models.AppBuildInfo,
	executor QueryExecutor,
	logger *logger.Logger,
) (*Services, error) {
	logger.Info().Msg("creating new services...")

	deploymentService, err := NewDeploymentService(cfg.DappDeploymentFile, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading dapp deployment: %w", err)
	}

	return &Services{
		AppInfoService:    NewAppInfoService(buildInfo),
		HealthService:     NewHealthService(storages.DB, logger),
		DeploymentService: deploymentService,
		QueryExecutor:     executor,
	}, nil
}

// Execute validates request and hands it to the registered [QueryExecutor].
func (s *Services) Execute(ctx context.Context, request models.GraphQLRequest) (models.GraphQLResponse, error) {
	if strings.TrimSpace(request.Query) == "" {
		return models.GraphQLResponse{}, ErrEmptyQuery
	}

	if s.QueryExecutor == nil {
		return models.GraphQLResponse{}, ErrQueryExecutorNotConfigured
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("operation", request.OperationName).Msg("executing graphql request")

	response, err := s.QueryExecutor.Execute(ctx, request)
	if err != nil {
		log.Debug().Err(err).Str("operation", request.OperationName).Msg("query executor failed")
		return models.GraphQLResponse{}, err
	}

	return response, nil
}

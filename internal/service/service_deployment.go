package service

import (
	"context"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"
)

type deploymentService struct {
	deployment *config.DappDeployment
}

// NewDeploymentService loads the deployment file at path once. An empty
// path yields a service that reports [ErrDeploymentNotConfigured]; a load
// failure is returned as the *config.ReadFileError or *config.JSONParseError
// from the loader.
func NewDeploymentService(path string, logger *logger.Logger) (DeploymentService, error) {
	if path == "" {
		logger.Info().Msg("no dapp deployment file configured")
		return &deploymentService{}, nil
	}

	deployment, err := config.ReadDappDeployment(path)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("dapp_address", deployment.DappAddress.Hex()).
		Str("dapp_deploy_block_hash", deployment.DappDeployBlockHash.Hex()).
		Msg("dapp deployment loaded")

	return &deploymentService{deployment: &deployment}, nil
}

func (s *deploymentService) GetDeployment(ctx context.Context) (config.DappDeployment, error) {
	if s.deployment == nil {
		return config.DappDeployment{}, ErrDeploymentNotConfigured
	}

	return *s.deployment, nil
}

package server

import (
	"context"
	"fmt"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/handler"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/service"
	"github.com/rollups-offchain/node/internal/store"
	"github.com/rollups-offchain/node/models"
)

type options struct {
	buildInfo models.AppBuildInfo
	executor  service.QueryExecutor
}

// Option customizes [Run].
type Option func(*options)

// WithBuildInfo sets the build metadata served by /api/version.
func WithBuildInfo(buildInfo models.AppBuildInfo) Option {
	return func(o *options) {
		o.buildInfo = buildInfo
	}
}

// WithQueryExecutor sets the executor behind /graphql. Without it the
// endpoint answers 501 Not Implemented.
func WithQueryExecutor(executor service.QueryExecutor) Option {
	return func(o *options) {
		o.executor = executor
	}
}

// Run connects to the database, builds the service and transport layers and
// serves until ctx is cancelled or a termination signal arrives. It blocks
// for the whole lifetime of the server.
func Run(ctx context.Context, cfg *config.GraphQLConfig, log *logger.Logger, opts ...Option) error {
	o := options{buildInfo: models.NewAppBuildInfo("", "", "")}
	for _, opt := range opts {
		opt(&o)
	}

	storages, err := store.NewStorages(ctx, cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, o.buildInfo, o.executor, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers := handler.NewHandlers(services, cfg, log)

	runtime, err := NewRuntime(handlers, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return runtime.Run(ctx)
}

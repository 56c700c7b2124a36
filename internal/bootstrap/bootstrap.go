// Package bootstrap implements the startup sequence of the GraphQL server
// process.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/server"
	"github.com/rollups-offchain/node/models"
)

// Steps are the collaborators invoked by [Run], in order.
type Steps struct {
	// ParseConfig builds the process configuration from command-line args.
	ParseConfig func(args []string) (*config.GraphQLConfig, error)

	// ConfigureLogger initializes process-wide logging.
	ConfigureLogger func(cfg config.Log) (*logger.Logger, error)

	// RunServer serves requests until the server stops.
	RunServer func(ctx context.Context, cfg *config.GraphQLConfig, log *logger.Logger) error
}

// Default returns the production steps: [config.GetGraphQLConfig],
// [logger.Configure] and [server.Run] reporting buildInfo.
func Default(buildInfo models.AppBuildInfo, opts ...server.Option) Steps {
	opts = append([]server.Option{server.WithBuildInfo(buildInfo)}, opts...)

	return Steps{
		ParseConfig:     config.GetGraphQLConfig,
		ConfigureLogger: logger.Configure,
		RunServer: func(ctx context.Context, cfg *config.GraphQLConfig, log *logger.Logger) error {
			return server.Run(ctx, cfg, log, opts...)
		},
	}
}

// Run parses the configuration, configures logging, logs the resolved
// configuration and blocks in steps.RunServer. A failure of any step ends
// the sequence; the server is never started when parsing or logging setup
// fails.
func Run(ctx context.Context, args []string, steps Steps) error {
	cfg, err := steps.ParseConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := steps.ConfigureLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	log.Info().Object("config", cfg).Msg("Starting GraphQL Server")

	if err = steps.RunServer(ctx, cfg, log); err != nil {
		return fmt.Errorf("run graphql server: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [GraphQLConfig] can be used to start
// the server. Each failure wraps one of the sentinel errors from errors.go.
func (cfg *GraphQLConfig) validate() error {
	if !validPort(cfg.GraphQL.Port) {
		return fmt.Errorf("%w: graphql port %d", ErrInvalidPort, cfg.GraphQL.Port)
	}

	if !validPort(cfg.Healthcheck.Port) {
		return fmt.Errorf("%w: healthcheck port %d", ErrInvalidPort, cfg.Healthcheck.Port)
	}

	if cfg.Postgres.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidPostgresConfig)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	if cfg.GRPC.Address != "" {
		var addr NetAddress
		if err := addr.Set(cfg.GRPC.Address); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidGRPCAddress, err)
		}
	}

	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, cfg.ShutdownTimeout)
	}

	return nil
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/store"
)

// healthCheckTimeout bounds a single database ping.
const healthCheckTimeout = 2 * time.Second

type healthService struct {
	db     store.Pinger
	logger *logger.Logger
}

// NewHealthService returns a [HealthService] that pings db.
func NewHealthService(db store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rollups-offchain/node/internal/logger"
)

// DB is the rollups database handle shared by the service layer. The schema
// is owned by the indexer that writes it; this process only reads.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Ping checks the connection. Transient failures are reported as
// [ErrDatabaseUnavailable], everything else as [ErrDatabaseFailure]; the
// driver error stays in the chain.
func (db *DB) Ping(ctx context.Context) error {
	err := db.PingContext(ctx)
	if err == nil {
		return nil
	}

	if db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Msg("database is temporarily unavailable")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	db.logger.Error().Err(err).Msg("database ping failed")
	return fmt.Errorf("%w: %w", ErrDatabaseFailure, err)
}

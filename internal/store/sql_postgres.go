package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// NewConnectPostgres opens the rollups database through the pgx driver and
// pings it once, so a wrong endpoint fails startup.
func NewConnectPostgres(ctx context.Context, cfg config.Postgres, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.Endpoint)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	db := newDB(conn, log)

	// ping database
	if err = db.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("endpoint", cfg.Redacted()).Msg("connected to database successfully")

	return db, nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

package store

import (
	"context"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"
)

// Storages groups the persistence backends used by the service layer.
type Storages struct {
	DB *DB
}

// NewStorages connects every backend described by cfg.
func NewStorages(ctx context.Context, cfg config.Postgres, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{DB: db}, nil
}

// Close releases all backend connections.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}

	return s.DB.Close()
}

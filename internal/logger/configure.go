package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Role is the "role" field value of every entry written by the process logger.
const Role = "graphql-server"

// ErrAlreadyConfigured is returned by [Configure] on every call after the first.
var ErrAlreadyConfigured = errors.New("logger is already configured")

var (
	configureOnce sync.Once
	configured    *Logger
	output        io.Writer = os.Stdout
)

// Configure installs the process-wide logger described by cfg: it sets
// zerolog's global level, builds the logger and registers it as zerolog's
// global log.Logger and default context logger.
//
// Configure must be called exactly once, before any goroutine that logs is
// started. An invalid cfg is rejected without touching global state, so a
// corrected cfg can still be installed afterwards. Once a logger is
// installed, later calls leave the global state untouched and return that
// logger together with [ErrAlreadyConfigured].
func Configure(cfg config.Log) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	err = ErrAlreadyConfigured
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(level)
		configured = newLogger(output, Role, cfg.Pretty)
		log.Logger = configured.Logger
		zerolog.DefaultContextLogger = &configured.Logger
		err = nil
	})

	return configured, err
}

// parseLevel maps an empty level name to info.
func parseLevel(name string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("error parsing log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return level, nil
}

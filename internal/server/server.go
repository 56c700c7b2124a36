package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/handler"
	"github.com/rollups-offchain/node/internal/handler/grpc"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/workers"
	"golang.org/x/sync/errgroup"
)

// Runtime supervises the transport servers of one process.
type Runtime struct {
	servers         []Server
	workers         *workers.Workers
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewRuntime creates the GraphQL and healthcheck HTTP servers, plus the gRPC
// server when the configuration enables it.
func NewRuntime(handlers *handler.Handlers, cfg *config.GraphQLConfig, logger *logger.Logger) (*Runtime, error) {
	logger.Info().Msg("creating new server...")

	servers := []Server{
		newHTTPServer("graphql", cfg.GraphQL.Address(), handlers.HTTP.InitGraphQL(), logger),
		newHTTPServer("healthcheck", cfg.Healthcheck.Address(), handlers.HTTP.InitHealthcheck(), logger),
	}

	if handlers.GRPC != nil {
		servers = append(servers, newGRPCServer(handlers.GRPC, cfg.GRPC.Address, logger))
	}

	var healthMonitor workers.Worker
	if handlers.GRPC != nil {
		healthMonitor = workers.WorkerFunc(func(ctx context.Context) {
			handlers.GRPC.Monitor(ctx, grpc.DefaultCheckInterval)
		})
	}

	return newRuntime(servers, workers.New(healthMonitor), cfg.ShutdownTimeout, logger)
}

func newRuntime(servers []Server, bg *workers.Workers, shutdownTimeout time.Duration, logger *logger.Logger) (*Runtime, error) {
	if len(servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return &Runtime{
		servers:         servers,
		workers:         bg,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

// Run serves every transport until ctx is cancelled, a termination signal
// arrives or one of the transports fails. All transports are then shut down
// within the shutdown timeout.
//
// Run returns nil after a requested shutdown and the first transport error
// otherwise. A transport that stops serving without a shutdown request is an
// error as well.
func (s *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		srv := srv
		g.Go(func() error {
			s.logger.Info().Str("server", srv.Name()).Msg("launching server")

			if err := srv.RunServer(); err != nil {
				return fmt.Errorf("%s server: %w", srv.Name(), err)
			}
			if gctx.Err() == nil {
				return fmt.Errorf("%s server: %w", srv.Name(), errServerStopped)
			}

			return nil
		})
	}

	g.Go(func() error {
		s.workers.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// Shutdown stops all transports concurrently and joins their errors.
func (s *Runtime) Shutdown(ctx context.Context) error {
	errs := make([]error, len(s.servers))

	var g errgroup.Group
	for i, srv := range s.servers {
		i, srv := i, srv
		g.Go(func() error {
			if err := srv.Shutdown(ctx); err != nil {
				errs[i] = fmt.Errorf("%s server shutdown: %w", srv.Name(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rollups-offchain/node/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) Name() string {
	return h.name
}

func (h *httpServer) RunServer() error {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("HTTP server listening")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("server", h.name).Msg("HTTP server Shutdown")

	if err := h.server.Shutdown(ctx); err != nil {
		_ = h.server.Close()
		return err
	}

	return nil
}

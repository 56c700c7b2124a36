package handler

import (
	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/handler/grpc"
	"github.com/rollups-offchain/node/internal/handler/http"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/service"
)

// Handlers groups the transport handlers of the server. HTTP is always set;
// GRPC is nil when no gRPC address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.GraphQLConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, logger),
	}

	if cfg.GRPC.Address != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers
}

package http

import (
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/service"
	"github.com/rollups-offchain/node/internal/utils"
)

// Handler serves both HTTP routers of the server. One instance is created
// at startup and shared by the GraphQL and healthcheck listeners.
type Handler struct {
	services *service.Services
	metrics  *metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newMetrics(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

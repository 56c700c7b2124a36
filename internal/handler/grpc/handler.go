package grpc

import (
	"context"
	"time"

	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "rollups.graphql"

// DefaultCheckInterval is how often [Handler.Monitor] re-evaluates health.
const DefaultCheckInterval = 5 * time.Second

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. Serving status is
// driven by [service.HealthService] and refreshed by [Handler.Monitor].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Until the first health evaluation every
// service is reported as NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Monitor refreshes the serving status every interval until ctx is done,
// then marks every service NOT_SERVING so that watchers see the shutdown.
func (h *Handler) Monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Refresh evaluates [service.HealthService] once and publishes the result.
func (h *Handler) Refresh(ctx context.Context) {
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC health status set to NOT_SERVING")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

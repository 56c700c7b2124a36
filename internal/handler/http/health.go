package http

import (
	"net/http"

	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/models"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		writeJSON(w, r, http.StatusServiceUnavailable, models.HealthStatus{
			Status: models.HealthStatusUnavailable,
			Error:  err.Error(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, models.HealthStatus{Status: models.HealthStatusOK})
}

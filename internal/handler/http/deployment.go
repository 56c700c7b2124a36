package http

import (
	"net/http"

	"github.com/rollups-offchain/node/internal/logger"
)

func (h *Handler) getDeployment(w http.ResponseWriter, r *http.Request) {
	deployment, err := h.services.DeploymentService.GetDeployment(r.Context())
	if err != nil {
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Int("status", status).Msg("error getting dapp deployment")
		http.Error(w, http.StatusText(status), status)
		return
	}

	writeJSON(w, r, http.StatusOK, deployment)
}

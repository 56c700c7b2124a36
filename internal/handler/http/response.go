package http

import (
	"encoding/json"
	"net/http"

	"github.com/rollups-offchain/node/internal/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/rollups-offchain/node/internal/service"
	"github.com/rollups-offchain/node/internal/store"
)

// errorStatuses is matched top to bottom, so an error wrapping several
// sentinels gets the status of the first one listed. Service-level errors
// come before the store errors they may wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidGraphQLRequest, http.StatusBadRequest},
	{ErrInvalidVariables, http.StatusBadRequest},

	{service.ErrEmptyQuery, http.StatusBadRequest},
	{service.ErrQueryExecutorNotConfigured, http.StatusNotImplemented},
	{service.ErrDeploymentNotConfigured, http.StatusNotFound},
	{service.ErrUnhealthy, http.StatusServiceUnavailable},

	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
	{store.ErrDatabaseFailure, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/models"
)

// maxGraphQLBodySize bounds the size of a POST /graphql body.
const maxGraphQLBodySize = 1 << 20

func (h *Handler) graphQL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := decodeGraphQLRequest(w, r)
	if err != nil {
		log.Err(err).Msg("invalid graphql request")
		writeGraphQLError(w, r, err)
		return
	}

	response, err := h.services.Execute(r.Context(), request)
	if err != nil {
		log.Err(err).Str("operation", request.OperationName).Msg("error executing graphql request")
		writeGraphQLError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, response)
}

// decodeGraphQLRequest reads the request envelope from the JSON body of a
// POST or from the query string of a GET.
func decodeGraphQLRequest(w http.ResponseWriter, r *http.Request) (models.GraphQLRequest, error) {
	var request models.GraphQLRequest

	if r.Method == http.MethodGet {
		query := r.URL.Query()
		request.Query = query.Get("query")
		request.OperationName = query.Get("operationName")

		if variables := query.Get("variables"); variables != "" {
			if err := json.Unmarshal([]byte(variables), &request.Variables); err != nil {
				return models.GraphQLRequest{}, fmt.Errorf("%w: %w", ErrInvalidVariables, err)
			}
		}

		return request, nil
	}

	body := http.MaxBytesReader(w, r.Body, maxGraphQLBodySize)
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		return models.GraphQLRequest{}, fmt.Errorf("%w: %w", ErrInvalidGraphQLRequest, err)
	}

	return request, nil
}

func writeGraphQLError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	writeJSON(w, r, status, models.GraphQLResponse{
		Errors: []models.GraphQLError{{Message: message}},
	})
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router names used as the "router" label of request metrics.
const (
	graphQLRouter     = "graphql"
	healthcheckRouter = "healthcheck"
)

// InitGraphQL returns the router served on the GraphQL address.
func (h *Handler) InitGraphQL() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics(graphQLRouter))

	router.Post("/graphql", h.graphQL)
	router.Get("/graphql", h.graphQL)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// InitHealthcheck returns the router served on the healthcheck port.
func (h *Handler) InitHealthcheck() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", h.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, h.withMetrics(healthcheckRouter))

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/deployment", h.getDeployment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

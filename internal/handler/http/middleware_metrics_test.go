package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	return m.GetCounter().GetValue()
}

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h := &Handler{logger: logger.Nop(), metrics: newMetrics()}

	router := chi.NewRouter()
	router.Use(h.withMetrics(graphQLRouter))
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := counterValue(t, h.metrics.requests.WithLabelValues(graphQLRouter, "/items/{id}", http.MethodGet, "418"))
	assert.Equal(t, float64(2), got)

	families, err := h.metrics.registry.Gather()
	require.NoError(t, err)
	var histograms int
	for _, family := range families {
		if family.GetName() == metricsNamespace+"_http_request_duration_seconds" {
			histograms = len(family.GetMetric())
		}
	}
	assert.Equal(t, 1, histograms)
}

func TestWithMetrics_UnmatchedRoute(t *testing.T) {
	h := &Handler{logger: logger.Nop(), metrics: newMetrics()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	h.withMetrics(healthcheckRouter)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	got := counterValue(t, h.metrics.requests.WithLabelValues(healthcheckRouter, "unmatched", http.MethodGet, "200"))
	assert.Equal(t, float64(1), got)
}

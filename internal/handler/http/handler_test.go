package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rollups-offchain/node/internal/config"
	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/mock"
	"github.com/rollups-offchain/node/internal/service"
	"github.com/rollups-offchain/node/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testServices bundles the mocked service layer behind a [Handler].
type testServices struct {
	appInfo    *mock.MockAppInfoService
	health     *mock.MockHealthService
	deployment *mock.MockDeploymentService
	executor   *mock.MockQueryExecutor
}

func newTestHandlerWithMocks(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		appInfo:    mock.NewMockAppInfoService(ctrl),
		health:     mock.NewMockHealthService(ctrl),
		deployment: mock.NewMockDeploymentService(ctrl),
		executor:   mock.NewMockQueryExecutor(ctrl),
	}

	h := NewHandler(&service.Services{
		AppInfoService:    mocks.appInfo,
		HealthService:     mocks.health,
		DeploymentService: mocks.deployment,
		QueryExecutor:     mocks.executor,
	}, logger.Nop())

	return h, mocks
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty query", err: service.ErrEmptyQuery, want: http.StatusBadRequest},
		{name: "no executor", err: service.ErrQueryExecutorNotConfigured, want: http.StatusNotImplemented},
		{name: "no deployment", err: service.ErrDeploymentNotConfigured, want: http.StatusNotFound},
		{name: "unhealthy", err: service.ErrUnhealthy, want: http.StatusServiceUnavailable},
		{name: "bad envelope", err: ErrInvalidGraphQLRequest, want: http.StatusBadRequest},
		{name: "unknown", err: assert.AnError, want: http.StatusInternalServerError},
		{name: "missing field", err: config.ErrMissingField, want: http.StatusInternalServerError},
		{name: "database unavailable", err: store.ErrDatabaseUnavailable, want: http.StatusServiceUnavailable},
		{name: "database failure", err: store.ErrDatabaseFailure, want: http.StatusInternalServerError},
		{
			name: "body too large",
			err:  fmt.Errorf("%w: %w", ErrInvalidGraphQLRequest, &http.MaxBytesError{Limit: maxGraphQLBodySize}),
			want: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

// TestStatusFromError_FirstMatchWins verifies that an error wrapping several
// sentinels always maps to the same status.
func TestStatusFromError_FirstMatchWins(t *testing.T) {
	unhealthy := fmt.Errorf("%w: %w", service.ErrUnhealthy, store.ErrDatabaseFailure)
	badQuery := fmt.Errorf("%w: %w", store.ErrDatabaseFailure, service.ErrEmptyQuery)

	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusServiceUnavailable, statusFromError(unhealthy))
		require.Equal(t, http.StatusBadRequest, statusFromError(badQuery))
	}
}

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/rollups-offchain/node/internal/logger"
	"github.com/rollups-offchain/node/internal/mock"
	"github.com/rollups-offchain/node/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	healthService := mock.NewMockHealthService(ctrl)

	h := NewHandler(&service.Services{HealthService: healthService}, logger.Nop())
	return h, healthService
}

// dial serves h on an in-memory listener and returns a health client.
func dial(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	h.Register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dial(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestRefresh_FollowsHealthService(t *testing.T) {
	h, healthService := newTestHandler(t)
	client := dial(t, h)

	healthService.EXPECT().Check(gomock.Any()).Return(nil)
	h.Refresh(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	healthService.EXPECT().Check(gomock.Any()).Return(service.ErrUnhealthy)
	h.Refresh(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestMonitor_StopsOnContextCancel(t *testing.T) {
	h, healthService := newTestHandler(t)
	client := dial(t, h)

	healthService.EXPECT().Check(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Monitor(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Monitor did not return after cancel")
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestCheck_UnknownService(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dial(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Error(t, err)
}

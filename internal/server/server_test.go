package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/handler"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func localConfig() config.Server {
	return config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_OnlyConfiguredTransports(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	srv := s.(*server)
	assert.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
}

func TestRunServer_ReturnsAfterContextCancel(t *testing.T) {
	cfg := localConfig()
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServer_BindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: taken.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gRPC listen")
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	h := newHTTPServer(newTestHandlers(t, cfg).HTTP.Init(), cfg, logger.Nop())
	require.NoError(t, h.listen())

	served := make(chan error, 1)
	go func() { served <- h.serve() }()

	resp, err := http.Get("http://" + h.listener.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))

	require.NoError(t, h.shutdown(context.Background()))
	assert.NoError(t, <-served)
}

func TestGRPCServer_HealthAndShutdown(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	g := newGRPCServer(newTestHandlers(t, cfg).GRPC, cfg, logger.Nop())
	require.NoError(t, g.listen())

	served := make(chan error, 1)
	go func() { served <- g.serve() }()

	conn, err := grpc.NewClient(g.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	require.NoError(t, g.shutdown(context.Background()))
	assert.NoError(t, <-served)
}

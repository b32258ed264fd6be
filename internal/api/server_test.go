package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mocks"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/scheduler"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestNew_WiresMiddlewareChain(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboard(ctrl)

	cfg := &config.Config{
		Server:     config.Server{Host: "localhost", Port: "0", CorsAllowedOrigins: []string{"http://localhost:5173"}},
		MarketMind: config.MarketMind{Timeout: time.Second},
		Workspace:  config.Workspace{MaxSessions: 1},
	}

	server, err := New(cfg,
		workspace.NewService(cfg, mocks.NewMockOperations(ctrl)),
		dashboard,
		scheduler.NewBackendHealthProbe(dashboard, cfg),
	)
	require.NoError(t, err)
	assert.Equal(t, "localhost:0", server.httpServer.Addr)
	assert.Equal(t, 6*time.Second, server.httpServer.WriteTimeout)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	server.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

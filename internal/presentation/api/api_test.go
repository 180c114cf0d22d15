package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkarlsen/pulse/internal/infrastructure/configs"
	"github.com/dkarlsen/pulse/internal/infrastructure/metrics"
	"github.com/dkarlsen/pulse/internal/infrastructure/sysinfo"
	"github.com/dkarlsen/pulse/internal/presentation/handler/envdump"
	"github.com/dkarlsen/pulse/internal/presentation/handler/health"
	"github.com/dkarlsen/pulse/internal/presentation/handler/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := configs.Config{
		HTTP: configs.HTTPConfig{Host: "127.0.0.1", Port: 8081},
		App: configs.AppConfig{
			Version:   "1.2.3",
			BuildDate: "2024-01-01T00:00:00Z",
			CommitSHA: "local-dev",
			Author:    "unknown",
		},
	}

	return NewApplication(
		cfg,
		*status.NewHandler(cfg, "test-instance"),
		*health.NewHandler(cfg, sysinfo.NewCollector()),
		*envdump.NewHandler(),
		zap.NewNop().Sugar(),
		metrics.New(),
	)
}

func TestMountRoutes(t *testing.T) {
	mux := newTestApplication(t).Mount()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "root", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "info", method: http.MethodGet, path: "/info", wantStatus: http.StatusOK},
		{name: "env", method: http.MethodGet, path: "/env", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
		{name: "unknown nested path", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/health", wantStatus: http.StatusNotFound},
		{name: "delete root", method: http.MethodDelete, path: "/", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNotFoundBody(t *testing.T) {
	mux := newTestApplication(t).Mount()

	req := httptest.NewRequest(http.MethodGet, "/does/not/exist", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "/does/not/exist", body["path"])
	assert.Equal(t, float64(http.StatusNotFound), body["status_code"])
	assert.NotEmpty(t, body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestApplication(t).Mount()

	// Drive a request through the middleware chain first so the
	// request counter has something to report.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pulse_requests_total")
}

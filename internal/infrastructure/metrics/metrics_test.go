package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequestAndScrape(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/nope", http.StatusNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `pulse_requests_total{method="GET",path="/health",status="200"} 2`)
	assert.Contains(t, body, `pulse_requests_total{method="GET",path="/nope",status="404"} 1`)
	assert.Contains(t, body, "pulse_request_duration_seconds")
	assert.Contains(t, body, "go_goroutines")
}

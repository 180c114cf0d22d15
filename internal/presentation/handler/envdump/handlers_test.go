package envdump

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvRedaction(t *testing.T) {
	t.Setenv("PULSE_TEST_PLAIN", "visible-value")
	t.Setenv("PULSE_TEST_SECRET", "hunter2")
	t.Setenv("pulse_test_api_url", "http://internal")
	t.Setenv("PULSE_TEST_TOKEN_TTL", "3600")

	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/env", nil)
	rec := httptest.NewRecorder()

	h.GetEnv(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body envResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "visible-value", body.Environment["PULSE_TEST_PLAIN"])
	assert.Equal(t, redactedPlaceholder, body.Environment["PULSE_TEST_SECRET"])
	assert.Equal(t, redactedPlaceholder, body.Environment["pulse_test_api_url"])
	assert.Equal(t, redactedPlaceholder, body.Environment["PULSE_TEST_TOKEN_TTL"])

	assert.Equal(t, len(body.Environment), body.Count)
	assert.NotEmpty(t, body.Timestamp)
}

func TestGetEnvCountMatchesProcessEnvironment(t *testing.T) {
	h := NewHandler()

	rec := httptest.NewRecorder()
	h.GetEnv(rec, httptest.NewRequest(http.MethodGet, "/env", nil))

	var body envResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	want := 0
	for _, kv := range os.Environ() {
		if strings.Contains(kv, "=") {
			want++
		}
	}
	assert.Equal(t, want, body.Count)
}

func TestIsSensitive(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "AWS_SECRET_ACCESS_KEY", want: true},
		{key: "DATABASE_PASSWORD", want: true},
		{key: "GITHUB_TOKEN", want: true},
		{key: "AUTH_HEADER", want: true},
		{key: "api_base_url", want: true},
		{key: "MyApiKey", want: true},
		{key: "HOME", want: false},
		{key: "PATH", want: false},
		{key: "LANG", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isSensitive(tt.key))
		})
	}
}

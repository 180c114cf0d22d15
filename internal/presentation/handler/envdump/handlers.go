package envdump

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dkarlsen/pulse/internal/infrastructure/json"
)

const redactedPlaceholder = "***REDACTED***"

// sensitiveWords flags environment keys whose lowercase form contains any
// of these substrings; matching values are never exposed.
var sensitiveWords = []string{"key", "secret", "token", "password", "auth", "api"}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetEnv godoc
// @Summary      Environment dump
// @Description  Returns the process environment with sensitive values redacted
// @Tags         status
// @Produce      json
// @Success      200 {object} envResponse
// @Router       /env [get]
func (h *Handler) GetEnv(w http.ResponseWriter, r *http.Request) {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))

	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}

		if isSensitive(key) {
			value = redactedPlaceholder
		}
		vars[key] = value
	}

	json.Write(w, http.StatusOK, envResponse{
		Environment: vars,
		Count:       len(vars),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func isSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, word := range sensitiveWords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

package json

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the shared error body for all non-2xx responses.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Path       string `json:"path,omitempty"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	resp := ErrorResponse{
		Error:      http.StatusText(status),
		Message:    msg,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteNotFound echoes the requested path back in the 404 body.
func WriteNotFound(w http.ResponseWriter, path string) {
	resp := ErrorResponse{
		Error:      http.StatusText(http.StatusNotFound),
		Message:    "The requested resource was not found",
		Path:       path,
		StatusCode: http.StatusNotFound,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteInternalError suppresses the failure detail; callers log it
// server-side before responding.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

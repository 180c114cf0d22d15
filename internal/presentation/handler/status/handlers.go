package status

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/dkarlsen/pulse/internal/infrastructure/configs"
	"github.com/dkarlsen/pulse/internal/infrastructure/json"
)

const (
	appName        = "pulse"
	appDescription = "Process and host introspection service for health checks and CI pipelines"
)

// endpointIndex maps every documented route to a one-line description.
var endpointIndex = map[string]string{
	"/":        "Application identity and endpoint index",
	"/health":  "Liveness plus host, memory and process metrics",
	"/info":    "Build and author metadata",
	"/env":     "Redacted environment dump",
	"/metrics": "Prometheus metrics",
}

type Handler struct {
	cfg        configs.Config
	instanceID string
}

func NewHandler(cfg configs.Config, instanceID string) *Handler {
	return &Handler{
		cfg:        cfg,
		instanceID: instanceID,
	}
}

// GetRoot godoc
// @Summary      Service identity
// @Description  Returns the application identity, version and endpoint index
// @Tags         status
// @Produce      json
// @Success      200 {object} rootResponse
// @Router       / [get]
func (h *Handler) GetRoot(w http.ResponseWriter, r *http.Request) {
	json.Write(w, http.StatusOK, rootResponse{
		Name:       appName,
		Version:    h.cfg.App.Version,
		Status:     "UP",
		Message:    fmt.Sprintf("%s v%s is running", appName, h.cfg.App.Version),
		InstanceID: h.instanceID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Endpoints:  endpointIndex,
	})
}

// GetInfo godoc
// @Summary      Build metadata
// @Description  Returns build, author and endpoint metadata
// @Tags         status
// @Produce      json
// @Success      200 {object} infoResponse
// @Router       /info [get]
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	endpoints := make([]string, 0, len(endpointIndex))
	for path := range endpointIndex {
		endpoints = append(endpoints, path)
	}
	sort.Strings(endpoints)

	json.Write(w, http.StatusOK, infoResponse{
		Application: applicationInfo{
			Name:        appName,
			Version:     h.cfg.App.Version,
			Description: appDescription,
			Author:      h.cfg.App.Author,
			BuildDate:   h.cfg.App.BuildDate,
			CommitSHA:   h.cfg.App.CommitSHA,
			Port:        h.cfg.HTTP.Port,
			InstanceID:  h.instanceID,
		},
		Endpoints: endpoints,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dkarlsen/pulse/internal/infrastructure/configs"
	"github.com/dkarlsen/pulse/internal/infrastructure/json"
	"github.com/dkarlsen/pulse/internal/infrastructure/sysinfo"
)

const shortSHALength = 8

// collector is the introspection surface the handler consumes;
// satisfied by *sysinfo.Collector.
type collector interface {
	Collect(ctx context.Context) (*sysinfo.Snapshot, error)
}

type Handler struct {
	cfg       configs.Config
	collector collector
}

func NewHandler(cfg configs.Config, collector collector) *Handler {
	return &Handler{
		cfg:       cfg,
		collector: collector,
	}
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns liveness plus host, memory and process metrics
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Failure      500 {object} healthErrorResponse "Introspection failed"
// @Router       /health [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	snap, err := h.collector.Collect(r.Context())
	if err != nil {
		// Caught locally: the failure message is reported to the
		// caller, unlike the generic outer 500 fallback.
		json.Write(w, http.StatusInternalServerError, healthErrorResponse{
			Status:    "unhealthy",
			Error:     err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	json.Write(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Version:   h.cfg.App.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Host: hostResponse{
			Hostname: snap.Host.Hostname,
			Platform: snap.Host.Platform,
			Arch:     snap.Host.Arch,
			Runtime:  snap.Host.GoVersion,
			Cores:    snap.Host.Cores,
			CPUModel: snap.Host.CPUModel,
		},
		Memory: memoryResponse{
			TotalMB:     snap.Memory.TotalMB,
			FreeMB:      snap.Memory.FreeMB,
			UsedPercent: snap.Memory.UsedPercent,
		},
		Process: processResponse{
			PID:           snap.Process.PID,
			HeapMB:        snap.Process.HeapMB,
			UptimeSeconds: snap.Process.UptimeSeconds,
			Uptime:        formatUptime(snap.Process.UptimeSeconds),
			BuildDate:     h.cfg.App.BuildDate,
			Commit:        shortCommit(h.cfg.App.CommitSHA),
		},
	})
}

// shortCommit truncates a commit SHA for display; short values pass through.
func shortCommit(sha string) string {
	if len(sha) > shortSHALength {
		return sha[:shortSHALength]
	}

	return sha
}

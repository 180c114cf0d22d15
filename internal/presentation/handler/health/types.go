package health

// healthResponse represents the full health snapshot of the service
type healthResponse struct {
	Status    string          `json:"status" example:"healthy" enum:"healthy,unhealthy"` // Health status
	Version   string          `json:"version" example:"1.2.0"`                           // Effective application version
	Timestamp string          `json:"timestamp" example:"2024-01-01T12:00:00Z"`          // Current server timestamp in RFC3339 format
	Host      hostResponse    `json:"host"`                                              // Host facts
	Memory    memoryResponse  `json:"memory"`                                            // Host memory facts
	Process   processResponse `json:"process"`                                           // Process facts
}

type hostResponse struct {
	Hostname string `json:"hostname" example:"worker-3"`
	Platform string `json:"platform" example:"linux"`
	Arch     string `json:"arch" example:"amd64"`
	Runtime  string `json:"runtime" example:"go1.25.3"` // Go runtime version
	Cores    int    `json:"cores" example:"8"`          // Logical core count
	CPUModel string `json:"cpu_model" example:"AMD EPYC 7763"`
}

type memoryResponse struct {
	TotalMB     uint64  `json:"total_mb" example:"15872"`
	FreeMB      uint64  `json:"free_mb" example:"4096"`
	UsedPercent float64 `json:"used_percent" example:"74"` // round((1 - free/total) * 100)
}

type processResponse struct {
	PID           int     `json:"pid" example:"1"`
	HeapMB        float64 `json:"heap_mb" example:"3.52"` // Resident heap usage
	UptimeSeconds int64   `json:"uptime_seconds" example:"90061"`
	Uptime        string  `json:"uptime" example:"1d 1h 1m 1s"` // Human-readable uptime
	BuildDate     string  `json:"build_date" example:"2024-01-01T00:00:00Z"`
	Commit        string  `json:"commit" example:"a1b2c3d4"` // Commit SHA, first 8 characters
}

// healthErrorResponse is returned when an introspection call fails
type healthErrorResponse struct {
	Status    string `json:"status" example:"unhealthy"`
	Error     string `json:"error"` // Failure message from the introspection call
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

package status

// rootResponse represents the application identity returned at the root path
type rootResponse struct {
	Name       string            `json:"name" example:"pulse"`
	Version    string            `json:"version" example:"1.2.0"`
	Status     string            `json:"status" example:"UP"`
	Message    string            `json:"message" example:"pulse v1.2.0 is running"`
	InstanceID string            `json:"instance_id" example:"550e8400-e29b-41d4-a716-446655440000"` // Minted once at startup
	Timestamp  string            `json:"timestamp" example:"2024-01-01T12:00:00Z"`
	Endpoints  map[string]string `json:"endpoints"` // Endpoint path -> one-line description
}

// infoResponse represents static build and author metadata
type infoResponse struct {
	Application applicationInfo `json:"application"`
	Endpoints   []string        `json:"endpoints"` // Documented endpoint paths
	Timestamp   string          `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

type applicationInfo struct {
	Name        string `json:"name" example:"pulse"`
	Version     string `json:"version" example:"1.2.0"`
	Description string `json:"description"`
	Author      string `json:"author" example:"unknown"`
	BuildDate   string `json:"build_date" example:"2024-01-01T00:00:00Z"`
	CommitSHA   string `json:"commit_sha" example:"a1b2c3d4e5f6a7b8c9d0"` // Untruncated
	Port        uint16 `json:"port" example:"8081"`
	InstanceID  string `json:"instance_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

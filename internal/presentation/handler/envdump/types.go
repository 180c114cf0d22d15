package envdump

// envResponse represents the redacted process environment
type envResponse struct {
	Environment map[string]string `json:"environment"` // Key -> value, sensitive values replaced by the placeholder
	Count       int               `json:"count" example:"42"`
	Timestamp   string            `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

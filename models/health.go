package models

// Health status values reported by the healthcheck endpoint.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthStatus is the body of the healthcheck response.
type HealthStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

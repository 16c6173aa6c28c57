// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse is returned by liveness and readiness probes.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// InfoResponse describes the running service.
type InfoResponse struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	MinInput uint64 `json:"minInput"`
	MaxInput uint64 `json:"maxInput"`
}

package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// InfoResponse is returned by GET /
type InfoResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   map[string]any `json:"endpoints"`
}

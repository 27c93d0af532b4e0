package types

import "github.com/killallgit/jobscout-api/internal/models"

// Status constants for health and service responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// JobSearchResponse is returned by the job search endpoint. On total provider
// failure Success is false, Jobs is empty, Pagination is zero and Error is set.
type JobSearchResponse struct {
	Success    bool              `json:"success"`
	Jobs       []models.Job      `json:"jobs"`
	Pagination models.Pagination `json:"pagination"`
	Message    string            `json:"message,omitempty"`
	Enhanced   bool              `json:"enhanced"`
	Error      string            `json:"error,omitempty"`
}

// SearchLogsResponse lists recently executed searches
type SearchLogsResponse struct {
	Success  bool               `json:"success"`
	Searches []models.SearchLog `json:"searches"`
	Count    int                `json:"count"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`    // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string                       `json:"status"`
	Timestamp string                       `json:"timestamp"`
	Services  map[string]map[string]string `json:"services"`
}

package models

// HealthResponse reports liveness and the size of the loaded dataset
type HealthResponse struct {
	Status    string               `json:"status"`
	Service   string               `json:"service"`
	Version   string               `json:"version"`
	Timestamp string               `json:"timestamp"`
	Records   RecordCountsResponse `json:"records"`
}

// IngestResponse acknowledges accepted records
type IngestResponse struct {
	Accepted  int    `json:"accepted"`
	RequestID string `json:"request_id"`
}

// RecordCountsResponse reports the store's record counts per family
type RecordCountsResponse struct {
	Completions     int `json:"completions"`
	Responses       int `json:"responses"`
	StatusDurations int `json:"status_durations"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

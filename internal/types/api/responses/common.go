package responses

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ListResponse wraps a list of items
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}

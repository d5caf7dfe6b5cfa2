package server

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse mirrors the error shape of the relay endpoint so clients can
// handle every failure the same way.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

package inbound

import "net/http"

// SubmitRequest is the POST /submit-function payload.
type SubmitRequest struct {
	Phrase string `json:"phrase"`
}

// SubmitResponse is the successful relay response.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
	Timestamp string `json:"timestamp"`
}

// StatusResponse is the root endpoint payload.
type StatusResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// TestEmailResponse reports a successful transport verification.
type TestEmailResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EmailService string `json:"emailService"`
}

// TestEmailErrorResponse reports a failed transport verification together
// with the underlying failure message.
type TestEmailErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusCode marks the verification failure as a server error.
func (TestEmailErrorResponse) StatusCode() int {
	return http.StatusInternalServerError
}

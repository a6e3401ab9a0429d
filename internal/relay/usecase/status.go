package usecase

import (
	"context"
	"time"
)

// StatusOutput is the fixed service metadata returned by the root endpoint.
type StatusOutput struct {
	Message   string
	Status    string
	Timestamp time.Time
	Endpoints map[string]string
}

// Status reports service metadata and the endpoint listing. No computation,
// no dependencies beyond the clock.
func (s *Usecase) Status(ctx context.Context) *StatusOutput {
	_, span := s.startSpan(ctx, "Status")
	defer span.End()

	return &StatusOutput{
		Message:   "Phrase relay service is running",
		Status:    "ok",
		Timestamp: s.clock.Now(),
		Endpoints: map[string]string{
			"status":    "GET /",
			"health":    "GET /health",
			"testEmail": "GET /test-email",
			"submit":    "POST /submit-function",
		},
	}
}

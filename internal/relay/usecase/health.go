package usecase

import (
	"context"
	"time"
)

// HealthOutput reports liveness and process uptime.
type HealthOutput struct {
	Status    string
	Timestamp time.Time
	Uptime    float64
}

// Health returns the current timestamp and seconds since process start.
func (s *Usecase) Health(ctx context.Context) *HealthOutput {
	_, span := s.startSpan(ctx, "Health")
	defer span.End()

	now := s.clock.Now()

	return &HealthOutput{
		Status:    "healthy",
		Timestamp: now,
		Uptime:    now.Sub(s.startedAt).Seconds(),
	}
}

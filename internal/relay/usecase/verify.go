package usecase

import (
	"context"
	"log/slog"
)

// VerifyMail checks transport credentials and connectivity without sending
// any email. The raw failure is returned so the endpoint can report it.
func (s *Usecase) VerifyMail(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "VerifyMail")
	defer span.End()

	if err := s.dispatcher.Verify(ctx); err != nil {
		slog.ErrorContext(ctx, "mail transport verification failed", "error", err)
		return err
	}

	return nil
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/mailbite/internal/pkg/goerror"
	"github.com/shandysiswandi/mailbite/internal/relay/entity"
)

type (
	// SubmitInput is a phrase submission with its request attributes.
	SubmitInput struct {
		// Phrase is validated on its trimmed form for emptiness but forwarded
		// untrimmed; the length bound applies to the raw value.
		Phrase string `validate:"notblank,max=5000"`
		Meta   entity.RequestMeta
	}

	// SubmitOutput reports a relayed submission.
	SubmitOutput struct {
		MessageID string
		Timestamp time.Time
	}
)

// Submit validates the phrase and relays it as one email. Validation failures
// short-circuit before any dispatch attempt.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("Validation error", err)
	}

	result, err := s.dispatcher.Send(ctx, in.Phrase, in.Meta)
	if err != nil {
		slog.ErrorContext(ctx, "failed to dispatch phrase email", "ip", in.Meta.IP, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "phrase relayed", "message_id", result.MessageID, "ip", in.Meta.IP)

	return &SubmitOutput{
		MessageID: result.MessageID,
		Timestamp: s.clock.Now(),
	}, nil
}

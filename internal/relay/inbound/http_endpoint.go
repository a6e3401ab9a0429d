package inbound

import (
	"time"

	"github.com/shandysiswandi/mailbite/internal/pkg/router"
	"github.com/shandysiswandi/mailbite/internal/relay/entity"
	"github.com/shandysiswandi/mailbite/internal/relay/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// Status returns fixed service metadata and the endpoint listing.
func (h *HTTPEndpoint) Status(r *router.Request) (any, error) {
	out := h.uc.Status(r.Context())

	return StatusResponse{
		Message:   out.Message,
		Status:    out.Status,
		Timestamp: out.Timestamp.UTC().Format(time.RFC3339),
		Endpoints: out.Endpoints,
	}, nil
}

// Health returns the current timestamp and process uptime.
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	out := h.uc.Health(r.Context())

	return HealthResponse{
		Status:    out.Status,
		Timestamp: out.Timestamp.UTC().Format(time.RFC3339),
		Uptime:    out.Uptime,
	}, nil
}

// TestEmail verifies transport credentials and connectivity without sending
// mail. Failures are reported in the response body rather than through the
// error codec because the payload carries the raw verification message.
func (h *HTTPEndpoint) TestEmail(r *router.Request) (any, error) {
	if err := h.uc.VerifyMail(r.Context()); err != nil {
		return TestEmailErrorResponse{
			Success: false,
			Message: "Email service verification failed",
			Error:   err.Error(),
		}, nil
	}

	return TestEmailResponse{
		Success:      true,
		Message:      "Email service is configured correctly",
		EmailService: "gmail",
	}, nil
}

// Submit accepts a phrase and relays it as an email.
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req SubmitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		Phrase: req.Phrase,
		Meta: entity.RequestMeta{
			IP:        r.ClientIP(),
			UserAgent: r.UserAgent(),
		},
	})
	if err != nil {
		return nil, err
	}

	return SubmitResponse{
		Success:   true,
		Message:   "Phrase sent successfully",
		MessageID: out.MessageID,
		Timestamp: out.Timestamp.UTC().Format(time.RFC3339),
	}, nil
}

package email

import (
	"context"
	"errors"
	"net"
	"net/textproto"

	"github.com/shandysiswandi/mailbite/internal/pkg/goerror"
)

// classify maps a provider failure onto one of the dispatch error classes.
// The mapping is deterministic: the same provider reply always produces the
// same class and user-facing message.
func classify(err error) error {
	var reply *textproto.Error
	if errors.As(err, &reply) {
		switch reply.Code {
		case 454, 530, 534, 535:
			return goerror.NewDispatch(err,
				"Email authentication failed. Please check the mail credentials.",
				goerror.CodeDispatchAuth)
		case 501, 510, 511, 513, 550, 551, 552, 553:
			return goerror.NewDispatch(err,
				"Invalid sender or recipient address.",
				goerror.CodeDispatchEnvelope)
		}
		return goerror.NewDispatch(err, "Failed to send email.", goerror.CodeDispatchUnknown)
	}

	// Dial failures, DNS errors, and timeouts all satisfy net.Error.
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return goerror.NewDispatch(err,
			"Could not connect to the email server. Please try again later.",
			goerror.CodeDispatchConnection)
	}

	return goerror.NewDispatch(err, "Failed to send email.", goerror.CodeDispatchUnknown)
}

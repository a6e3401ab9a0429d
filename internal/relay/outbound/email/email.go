// Package email adapts the mail transport into the relay module's outbound
// dispatcher: it owns the process-wide transport handle, builds the outgoing
// message for a phrase submission, and classifies provider failures.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/mailbite/internal/pkg/clock"
	"github.com/shandysiswandi/mailbite/internal/pkg/goerror"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbite/internal/pkg/mail"
	"github.com/shandysiswandi/mailbite/internal/relay/entity"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/atomic"
)

// Factory constructs a mail transport from configured credentials.
type Factory func() (mail.Mail, error)

// Config wires a Dispatcher.
type Config struct {
	// Transport optionally seeds the handle with a transport built at startup.
	Transport mail.Mail
	// Factory recreates the transport when the handle is found absent.
	Factory Factory
	// FromName is the fixed sender display name.
	FromName string
	// FromAddress is the configured account the sender identity is bound to.
	FromAddress string
	// To is the fixed recipient address.
	To string
	// Clock supplies the subject date and body timestamp.
	Clock clock.Clocker
	// Instrument provides tracing.
	Instrument instrument.Instrumentation
}

// Dispatcher relays phrase submissions as email.
//
// The transport handle is shared process-wide and read without a lock;
// when absent it is recreated through the factory. Concurrent first requests
// may each construct a transport, which is harmless because construction is
// idempotent and the last stored handle simply wins.
type Dispatcher struct {
	handle   atomic.Value
	factory  Factory
	fromName string
	fromAddr string
	to       string
	clock    clock.Clocker
	ins      instrument.Instrumentation
}

// New builds a Dispatcher, seeding the transport handle when one is provided.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		factory:  cfg.Factory,
		fromName: cfg.FromName,
		fromAddr: cfg.FromAddress,
		to:       cfg.To,
		clock:    cfg.Clock,
		ins:      cfg.Instrument,
	}
	if cfg.Transport != nil {
		d.handle.Store(cfg.Transport)
	}
	return d
}

// Send relays the phrase as one email. Exactly one transport send is issued
// per call; failures are classified and never retried.
func (d *Dispatcher) Send(ctx context.Context, phrase string, meta entity.RequestMeta) (*entity.DispatchResult, error) {
	ctx, span := d.ins.Tracer("relay.outbound.email").Start(ctx, "Send")
	defer span.End()

	transport, err := d.transport(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := d.clock.Now()
	meta = meta.OrUnknown()

	htmlBody, textBody, err := renderBodies(phrase, now, meta)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	id, err := transport.Send(ctx, mail.Message{
		From:     fmt.Sprintf("%q <%s>", d.fromName, d.fromAddr),
		To:       []string{d.to},
		Subject:  "New Phrase Submission - " + now.Format("January 2, 2006"),
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		classified := classify(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, classified
	}

	return &entity.DispatchResult{MessageID: id}, nil
}

// Verify checks transport credentials and connectivity without sending mail.
func (d *Dispatcher) Verify(ctx context.Context) error {
	ctx, span := d.ins.Tracer("relay.outbound.email").Start(ctx, "Verify")
	defer span.End()

	transport, err := d.transport(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := transport.Verify(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Close releases the current transport handle, if any.
func (d *Dispatcher) Close() error {
	if transport, ok := d.handle.Load().(mail.Mail); ok {
		return transport.Close()
	}
	return nil
}

// transport returns the shared handle, lazily recreating it when absent.
func (d *Dispatcher) transport(ctx context.Context) (mail.Mail, error) {
	if transport, ok := d.handle.Load().(mail.Mail); ok {
		return transport, nil
	}

	transport, err := d.factory()
	if err != nil {
		return nil, goerror.NewDispatch(err, "Email service configuration error", goerror.CodeDispatchConfig)
	}

	slog.InfoContext(ctx, "mail transport recreated")
	d.handle.Store(transport)

	return transport, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/mailbite/internal/pkg/clock"
	"github.com/shandysiswandi/mailbite/internal/pkg/config"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbite/internal/pkg/validator"
	"github.com/shandysiswandi/mailbite/internal/relay/entity"
	"go.opentelemetry.io/otel/trace"
)

type dispatcher interface {
	Send(ctx context.Context, phrase string, meta entity.RequestMeta) (*entity.DispatchResult, error)
	Verify(ctx context.Context) error
}

// Usecase implements the relay operations: submit, status, health, and mail
// verification. It holds no request state; the only long-lived piece is the
// process start time used for the uptime report.
type Usecase struct {
	dispatcher dispatcher
	cfg        config.Config
	clock      clock.Clocker
	validator  validator.Validator
	ins        instrument.Instrumentation
	startedAt  time.Time
}

// Dependency wires a Usecase.
type Dependency struct {
	Dispatcher dispatcher
	Config     config.Config
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

// NewRelay builds the relay Usecase.
func NewRelay(dep Dependency) *Usecase {
	return &Usecase{
		dispatcher: dep.Dispatcher,
		cfg:        dep.Config,
		clock:      dep.Clock,
		validator:  dep.Validator,
		ins:        dep.Instrument,
		startedAt:  dep.Clock.Now(),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("relay.usecase").Start(ctx, name)
}

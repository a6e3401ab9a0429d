// Package relay is the phrase-to-email module: it accepts a text phrase over
// HTTP and relays it as an email through the configured mail provider.
package relay

import (
	"github.com/shandysiswandi/mailbite/internal/pkg/clock"
	"github.com/shandysiswandi/mailbite/internal/pkg/config"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbite/internal/pkg/mail"
	"github.com/shandysiswandi/mailbite/internal/pkg/router"
	"github.com/shandysiswandi/mailbite/internal/pkg/validator"
	"github.com/shandysiswandi/mailbite/internal/relay/inbound"
	"github.com/shandysiswandi/mailbite/internal/relay/outbound/email"
	"github.com/shandysiswandi/mailbite/internal/relay/usecase"
)

// Dependency lists everything the relay module needs from the application.
type Dependency struct {
	Config      config.Config
	Instrument  instrument.Instrumentation
	Clock       clock.Clocker
	Validator   validator.Validator
	Router      *router.Router
	Mail        mail.Mail
	MailFactory email.Factory
}

// New wires the relay module and registers its HTTP endpoints. It returns the
// dispatcher so the application can close the transport handle on shutdown.
func New(dep Dependency) (*email.Dispatcher, error) {
	dispatcher := email.New(email.Config{
		Transport:   dep.Mail,
		Factory:     dep.MailFactory,
		FromName:    dep.Config.GetString("mail.from_name"),
		FromAddress: dep.Config.GetString("mail.username"),
		To:          dep.Config.GetString("mail.to"),
		Clock:       dep.Clock,
		Instrument:  dep.Instrument,
	})

	uc := usecase.NewRelay(usecase.Dependency{
		Dispatcher: dispatcher,
		Config:     dep.Config,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return dispatcher, nil
}

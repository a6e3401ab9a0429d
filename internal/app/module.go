package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/mailbite/internal/relay"
)

func (a *App) initModules() {
	dispatcher, err := relay.New(relay.Dependency{
		Config:      a.config,
		Instrument:  a.ins,
		Clock:       a.clock,
		Validator:   a.validator,
		Router:      a.router,
		Mail:        a.mail,
		MailFactory: a.mailFactory,
	})
	if err != nil {
		slog.Error("failed to init module relay", "error", err)
		os.Exit(1)
	}

	a.closers = append(a.closers, struct {
		name string
		fn   func(context.Context) error
	}{"Mail Dispatcher", func(context.Context) error { return dispatcher.Close() }})
}

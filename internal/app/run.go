package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/session"
	"github.com/vk/prodcat/internal/terminal"
)

// Run starts an interactive session and blocks until it ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "clear_screen", a.clear)

	var opts []terminal.Option
	if !a.clear {
		opts = append(opts, terminal.WithoutClear())
	}
	console := terminal.NewConsole(a.in, a.out, opts...)

	s := session.New(console, a.store, a.settings.Commands)
	if err := s.Run(ctx); err != nil {
		return errors.Wrap(err, "session failed")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

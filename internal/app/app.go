package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/catalog"
	"github.com/vk/prodcat/internal/config"
	"github.com/vk/prodcat/internal/csvimport"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/inmemorystore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	settings *config.Model
	store    catalog.Store
	clear    bool
}

// NewApp is the constructor for the main application. It loads the settings,
// preloads the catalog and returns an App ready to run a session over in and
// out. Logs are written to logW.
//
// Startup failures (unreadable settings, invalid seed or import rows) are
// fatal and cause a panic.
func NewApp(in io.Reader, out, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := loader.Load(ctx, cfg.settingsPaths()...)
	if err != nil {
		panic(errors.Wrap(err, "failed to load settings"))
	}
	logger.Debug("Settings loaded.", "commands", settings.Commands, "seed", len(settings.Seed))

	store := inmemorystore.New()
	for _, p := range settings.Seed {
		if err := store.Add(ctx, p); err != nil {
			panic(errors.Wrap(err, "failed to seed catalog"))
		}
	}

	if cfg.ImportPath != "" {
		imported, err := csvimport.ReadFile(ctx, cfg.ImportPath)
		if err != nil {
			panic(errors.Wrap(err, "failed to import products"))
		}
		for _, p := range imported {
			if err := store.Add(ctx, p); err != nil {
				panic(errors.Wrap(err, "failed to import products"))
			}
		}
		logger.Debug("Products imported.", "path", cfg.ImportPath, "count", len(imported))
	}

	count, err := store.Len(ctx)
	if err != nil {
		panic(errors.Wrap(err, "failed to count catalog"))
	}
	logger.Debug("Catalog preloaded.", "products", count)

	return &App{
		in:       in,
		out:      out,
		logger:   logger,
		settings: settings,
		store:    store,
		clear:    settings.Display.ClearScreen && !cfg.NoClear,
	}
}

// Store returns the application's catalog. This is primarily for testing.
func (a *App) Store() catalog.Store {
	return a.store
}

// Settings returns the loaded settings model.
func (a *App) Settings() *config.Model {
	return a.settings
}

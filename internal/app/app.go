// Package app provides top-level lifecycle management for the rent estimator.
// It wires the configured dataset source, loads the dataset exactly once, and
// hands the query surface to the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lagosrent/rentoracle/internal/config"
	"github.com/lagosrent/rentoracle/internal/dataset"
	"github.com/lagosrent/rentoracle/internal/estimator"
)

// App is the root application object. It owns the configuration, logger, and
// a list of cleanup functions that are called in reverse order on shutdown.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []func()

	est *estimator.Estimator
}

// New creates a new App from the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
	}
}

// Init wires the dataset source, fetches the dataset, and builds the
// estimator. The source is released as soon as the load completes: every
// query afterwards runs against the in-memory dataset only. Any failure here
// aborts initialization entirely; there is no partial-dataset mode.
func (a *App) Init(ctx context.Context) error {
	source, err := wireSource(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("app: wire dataset source: %w", err)
	}
	defer source.Close()

	areas, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("app: fetch dataset: %w", err)
	}

	data, err := dataset.New(areas)
	if err != nil {
		return fmt.Errorf("app: build dataset: %w", err)
	}

	a.logger.InfoContext(ctx, "dataset loaded",
		slog.String("source", a.cfg.Dataset.Source),
		slog.Int("areas", data.Len()),
	)

	a.est = estimator.New(data, a.logger)
	return nil
}

// Estimator returns the query surface. Init must have succeeded first.
func (a *App) Estimator() *estimator.Estimator {
	return a.est
}

// Close tears down all resources in reverse registration order. It is safe to
// call multiple times; subsequent calls are no-ops.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

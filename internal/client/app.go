package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/machine"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type App struct {
	machine Reducer
	ui      UI
	source  *events.Source

	logger *logger.Logger
}

// NewApp builds the session runtime. tick is the Tick event period.
func NewApp(reducer Reducer, ui UI, tick time.Duration, logger *logger.Logger) *App {
	return &App{
		machine: reducer,
		ui:      ui,
		source:  events.NewSource(tick, ui.Input(), logger.WithComponent("events")),
		logger:  logger,
	}
}

// Run blocks until the session ends: the machine asked to terminate, the UI
// exited or ctx was cancelled. The terminal is restored before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Msg("session started")
	err := workers.NewWorkers(
		workers.WorkerFunc(a.source.Run),
		workers.WorkerFunc(func(ctx context.Context) error {
			return a.consume(ctx, cancel)
		}),
		workers.WorkerFunc(func(ctx context.Context) error {
			// the UI can exit on its own (terminal closed)
			defer cancel()
			return a.ui.Run(ctx)
		}),
	).Run(ctx)
	a.logger.Info().Err(err).Msg("session ended")

	return err
}

// consume is the single consumer: it applies events in order and renders a
// snapshot whenever the visible state changed. It returns after the source
// delivered Terminate.
func (a *App) consume(ctx context.Context, cancel context.CancelFunc) error {
	prev := a.machine.Snapshot()
	a.ui.Render(prev)

	for {
		ev, ok := a.source.Next()
		if !ok {
			return nil
		}

		directive, err := a.machine.Apply(ctx, ev)
		if err != nil {
			a.logger.Warn().Err(err).Str("event", ev.String()).Msg("transition failed")
		}

		if snap := a.machine.Snapshot(); !snap.Equal(prev) {
			a.ui.Render(snap)
			prev = snap
		}

		if directive == machine.Terminate {
			cancel()
		}
	}
}

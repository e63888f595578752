package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/usecase"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/config"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/validator"
)

// App wires dependencies and manages their lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator

	// resources
	dbConn *pgxpool.Pool

	// modules
	monitoringLocation *usecase.Usecase

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New loads configuration from CONFIG_PATH and wires the application.
func New(ctx context.Context) (*App, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig wires the application from an already loaded configuration.
// The App owns cfg and closes it on Close.
func NewWithConfig(ctx context.Context, cfg config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(ctx)
	a := &App{
		ctx:    ctx,
		cancel: cancel,
		config: cfg,
	}
	a.initClosers()

	steps := []struct {
		name string
		fn   func() error
	}{
		{name: "instrument", fn: a.initInstrument},
		{name: "libraries", fn: a.initLibraries},
		{name: "database", fn: a.initDatabase},
		{name: "modules", fn: a.initModules},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			slog.Error("failed to init application", "step", step.name, "error", err)
			_ = a.Close(context.Background())
			return nil, err
		}
	}

	return a, nil
}

// MonitoringLocation returns the monitoring location write path.
func (a *App) MonitoringLocation() *usecase.Usecase {
	return a.monitoringLocation
}

// Close releases every initialized resource in reverse dependency order.
func (a *App) Close(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}

	var errs []error
	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

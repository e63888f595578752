package app

import (
	"context"
	"fmt"
	"os"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/outbound/db"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/config"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/database"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/validator"
)

const defaultConfigPath = "/config/config.yaml"

func initConfig() (config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		return nil, fmt.Errorf("init config: %w", err)
	}

	return cfg, nil
}

func (a *App) initInstrument() error {
	ins, err := instrument.New(a.ctx, &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		return fmt.Errorf("init instrumentation: %w", err)
	}

	a.ins = ins
	return nil
}

func (a *App) initLibraries() error {
	v, err := validator.NewV10Validator()
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}

	a.validator = v
	return nil
}

func (a *App) initDatabase() error {
	pool, err := database.NewPool(a.ctx, a.config)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.dbConn = pool

	if a.config.GetBool("database.ensure_schema") {
		if err := db.NewDB(pool, a.ins).EnsureSchema(a.ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Database",
			fn: func(context.Context) error {
				if a.dbConn != nil {
					a.dbConn.Close()
				}

				return nil
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				if a.ins == nil {
					return nil
				}

				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				if a.config == nil {
					return nil
				}

				return a.config.Close()
			},
		},
	}
}

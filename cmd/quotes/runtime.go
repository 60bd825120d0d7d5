package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotes-api/internal/adapters/mysqlstore"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
)

// runtime is everything a command needs, built once from the profile.
type runtime struct {
	cfg       *config.Config
	logger    *slog.Logger
	telemetry *telemetry.Provider
	store     *mysqlstore.Store
}

func bootstrap(ctx context.Context, profile string) (*runtime, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(loggingConfig(cfg))
	logging.SetDefault(logger)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	store, err := mysqlstore.Open(ctx, storeConfig(cfg),
		mysqlstore.WithLogger(logger),
		mysqlstore.WithRegisterer(prometheus.DefaultRegisterer),
	)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, err
	}

	logger.DebugContext(ctx, "runtime ready",
		slog.String("profile", profile),
		slog.String("database", cfg.Database.Name),
		slog.Bool("telemetry", tel.Enabled()),
	)

	return &runtime{cfg: cfg, logger: logger, telemetry: tel, store: store}, nil
}

func (rt *runtime) close(ctx context.Context) {
	if err := rt.store.Close(); err != nil {
		rt.logger.Error("closing store", slog.Any("error", err))
	}

	if err := rt.telemetry.Shutdown(ctx); err != nil {
		rt.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func (rt *runtime) importer() *app.QuoteImporter {
	return app.NewQuoteImporter(app.QuoteImporterConfig{
		Writer:  rt.store,
		Logger:  rt.logger,
		Workers: rt.cfg.Quotes.ImportWorkers,
	})
}

func (rt *runtime) schema() *app.SchemaService {
	return app.NewSchemaService(rt.store, rt.importer(), rt.logger)
}

func loggingConfig(cfg *config.Config) *logging.Config {
	return &logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Service:   cfg.App.Name,
		Version:   cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
}

func storeConfig(cfg *config.Config) *mysqlstore.Config {
	db := cfg.Database
	return &mysqlstore.Config{
		Host:            db.Host,
		Port:            db.Port,
		Database:        db.Name,
		User:            db.User,
		Password:        db.Password,
		Pooling:         db.Pooling,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		ConnMaxLifetime: db.ConnMaxLifetime,
		DialTimeout:     db.DialTimeout,
	}
}

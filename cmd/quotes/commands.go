package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/random"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

func (c *cli) runAPI(ctx context.Context, rt *runtime) error {
	cfg := rt.cfg

	if cfg.Database.MigrateOnStart {
		if _, err := rt.schema().Setup(ctx, ""); err != nil {
			return err
		}
	}

	rng, err := random.NewSeeded()
	if err != nil {
		return fmt.Errorf("seeding random source: %w", err)
	}

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:          rt.store,
		Random:         rng,
		Logger:         rt.logger,
		MaxPageSize:    cfg.Quotes.MaxPageSize,
		RandomAttempts: cfg.Quotes.RandomRetryLimit,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(rt.store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	server := http.New(&cfg.Server, rt.logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      rt.logger,
		ServiceName: cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(registry,
			handlers.NewBuildInfo(Version, Commit, BuildTime), prometheus.DefaultGatherer),
		QuoteHandler: handlers.NewQuoteHandler(quotes, cfg.Quotes.DefaultPageSize),
		Timeout:      cfg.Server.RequestTimeout,
		Tracing:      rt.telemetry.Enabled(),
	})

	rt.logger.InfoContext(ctx, "starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	return waitForShutdown(ctx, rt.logger, server, server.Start(), cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until ctx is cancelled by a signal or the server
// fails, then drains the server within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func (c *cli) runSetup(ctx context.Context, rt *runtime) error {
	result, err := rt.schema().Setup(ctx, c.seed)
	if err != nil {
		return err
	}

	if c.seed != "" {
		reportSeeded(c.out, result)
	}
	return nil
}

func (c *cli) runCleanup(ctx context.Context, rt *runtime) error {
	if err := rt.schema().Cleanup(ctx); err != nil {
		return err
	}

	reportCleanedUp(c.out)
	return nil
}

func (c *cli) runAdd(ctx context.Context, rt *runtime) error {
	result, err := rt.importer().ImportFile(ctx, c.addFile)
	if err != nil {
		return err
	}

	reportAdded(c.out, result)
	return nil
}

// quoteFinder is the slice of QuoteService the quote command uses.
type quoteFinder interface {
	GetQuoteByID(ctx context.Context, id string) (*domain.Quote, error)
}

func (c *cli) runQuote(ctx context.Context, rt *runtime) error {
	return c.showQuote(ctx, app.NewQuoteService(app.QuoteServiceConfig{
		Store:  rt.store,
		Random: random.NewPCG(0, 0),
		Logger: rt.logger,
	}))
}

func (c *cli) showQuote(ctx context.Context, finder quoteFinder) error {
	q, err := finder.GetQuoteByID(ctx, c.quoteID)
	if errors.Is(err, domain.ErrNotFound) {
		reportQuoteNotFound(c.out, c.quoteID)
		return nil
	}
	if err != nil {
		return err
	}

	printQuote(c.out, q)
	return nil
}

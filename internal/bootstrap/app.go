package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/preston-bernstein/bggshelf/internal/app/shelf"
	"github.com/preston-bernstein/bggshelf/internal/config"
	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/store"
)

var metricsSetup = metrics.Setup

// App holds the wired components for one CLI run.
type App struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	gatherer    prometheus.Gatherer
	metricsStop func(context.Context) error
	provider    providers.ShelfProvider
	Shelf       *shelf.Service
}

// New wires the configured provider, metrics and a fresh shelf session.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) *App {
	return newAppWithProvider(ctx, cfg, logger, nil)
}

// newAppWithProvider is used by tests to inject a provider. The injected
// provider still gets the shared wrappers.
func newAppWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, base providers.ShelfProvider) *App {
	recorder, gatherer, metricsStop := buildMetrics(ctx, cfg, logger)

	factory := newProviderFactory(logger, recorder)
	var provider providers.ShelfProvider
	if base == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, base)
	}

	return &App{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		gatherer:    gatherer,
		metricsStop: metricsStop,
		provider:    provider,
		Shelf:       shelf.NewService(provider, provider, store.NewMemoryStore(), logger, recorder),
	}
}

// Metrics exposes the recorder shared by every component.
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}

// Close flushes metrics to the configured textfile and shuts telemetry down.
func (a *App) Close(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if a.gatherer != nil && a.cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath, a.gatherer); err != nil {
			logging.Warn(a.logger, "metrics textfile write failed", slog.Any("error", err))
			errs = append(errs, err)
		} else {
			logging.Debug(a.logger, "metrics textfile written", slog.String("path", a.cfg.Metrics.TextfilePath))
		}
	}

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	logging.Debug(a.logger, "shutdown complete")
	return errors.Join(errs...)
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, prometheus.Gatherer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, gatherer, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
		return metrics.NewRecorder(), nil, nil
	}
	return rec, gatherer, shutdown
}

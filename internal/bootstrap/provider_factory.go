package bootstrap

import (
	"log/slog"

	"github.com/preston-bernstein/bggshelf/internal/config"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
	"github.com/preston-bernstein/bggshelf/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (pacing + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ShelfProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger, f.metrics))
}

func (f providerFactory) wrap(cfg config.Config, base providers.ShelfProvider) providers.ShelfProvider {
	paced := providers.NewRateLimitedProvider(base, cfg.BGG.MinRequestInterval, cfg.BGG.RequestBurst, f.logger)
	return providers.NewInstrumentedProvider(paced, f.logger, f.metrics, normalizeProviderName(cfg.Provider))
}

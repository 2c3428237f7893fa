package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/bggshelf/internal/config"
	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/providers/bgg"
	"github.com/preston-bernstein/bggshelf/internal/providers/fixture"
)

const (
	providerBGG     = "bgg"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.ShelfProvider {
	switch normalizeProviderName(cfg.Provider) {
	case providerFixture:
		return fixture.New()
	case providerBGG:
		return newBGGClient(cfg, logger, recorder)
	default:
		logging.Warn(logger, "unknown provider, falling back to bgg", slog.String(logging.FieldProvider, cfg.Provider))
		return newBGGClient(cfg, logger, recorder)
	}
}

func newBGGClient(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *bgg.Client {
	return bgg.NewClient(bgg.Config{
		CollectionURL: cfg.BGG.CollectionURL,
		ThingURL:      cfg.BGG.ThingURL,
		ProxyURL:      cfg.BGG.ProxyURL,
		Timeout:       cfg.BGG.HTTPTimeout,
		Logger:        logger,
		Metrics:       recorder,
	})
}

// normalizeProviderName lower-cases the configured name; empty means bgg.
func normalizeProviderName(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return providerBGG
	}
	return raw
}

package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
)

// instrumentedProvider records metrics and logs for every call to the wrapped
// provider. Failures are surfaced to the caller as-is: BGG throttles bursts,
// so a failed call is reported and never repeated automatically.
type instrumentedProvider struct {
	inner        ShelfProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
}

// NewInstrumentedProvider wraps inner with metrics and structured logging.
func NewInstrumentedProvider(inner ShelfProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) ShelfProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
	}
}

func (p *instrumentedProvider) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	games, err := p.inner.FetchCollection(ctx, username)
	p.observe(ctx, "collection fetch", time.Since(start), err,
		slog.String(logging.FieldUsername, username),
		slog.Int(logging.FieldCount, len(games)),
	)
	return games, err
}

func (p *instrumentedProvider) FetchDetail(ctx context.Context, id int) (detail.GameDetail, error) {
	if p.inner == nil {
		return detail.GameDetail{}, ErrProviderUnavailable
	}
	start := time.Now()
	d, err := p.inner.FetchDetail(ctx, id)
	p.observe(ctx, "detail fetch", time.Since(start), err,
		slog.Int(logging.FieldGameID, id),
		slog.Int(logging.FieldCount, len(d.PlayerCountRecommendations)),
	)
	return d, err
}

func (p *instrumentedProvider) observe(ctx context.Context, call string, elapsed time.Duration, err error, args ...any) {
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)
	args = append(args, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))

	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelInfo, p.providerName, call+" succeeded", args...)
		return
	}
	if errors.Is(err, context.Canceled) {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, call+" canceled", args...)
		return
	}
	if rlErr, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.providerName, rlErr.RetryAfter)
		args = append(args, slog.Int(logging.FieldStatusCode, rlErr.StatusCode), slog.Duration("retry_after", rlErr.RetryAfter))
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, call+" throttled", args...)
		return
	}
	if stErr, ok := AsStatusError(err); ok {
		args = append(args, slog.Int(logging.FieldStatusCode, stErr.StatusCode))
	}
	args = append(args, slog.Any("error", err))
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, call+" failed", args...)
}

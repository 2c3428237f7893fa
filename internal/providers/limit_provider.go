package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider paces calls to the wrapped provider through a token bucket.
type rateLimitedProvider struct {
	next    ShelfProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a ShelfProvider that spaces calls at least
// interval apart, allowing burst calls back to back. A non-positive interval
// disables pacing and returns next unchanged.
// Calls block until a token is available or ctx ends; nothing is retried.
func NewRateLimitedProvider(next ShelfProvider, interval time.Duration, burst int, logger *slog.Logger) ShelfProvider {
	if interval <= 0 && next != nil {
		return next
	}
	if interval <= 0 {
		interval = time.Second
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	if err := p.wait(ctx, "collection"); err != nil {
		return nil, err
	}
	return p.next.FetchCollection(ctx, username)
}

func (p *rateLimitedProvider) FetchDetail(ctx context.Context, id int) (detail.GameDetail, error) {
	if err := p.wait(ctx, "detail"); err != nil {
		return detail.GameDetail{}, err
	}
	return p.next.FetchDetail(ctx, id)
}

func (p *rateLimitedProvider) wait(ctx context.Context, call string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	start := time.Now()
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", slog.String("call", call))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	if waited := time.Since(start); waited > time.Millisecond {
		logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "paced provider call",
			slog.String("call", call),
			slog.Int64("waited_ms", waited.Milliseconds()),
		)
	}
	return nil
}

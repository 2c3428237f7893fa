package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type shelfStats struct {
	searches     int
	searchErrors int
	superseded   int
	gamesLoaded  int
	detailLoads  int
	detailErrors int
}

// Recorder captures in-memory counters about provider calls and shelf
// activity, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	shelf shelfStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks a throttled response and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordHTTPRequest tracks outbound HTTP calls.
func (r *Recorder) RecordHTTPRequest(method, host string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, host, status, duration)
}

// RecordSearch tracks a collection search. superseded searches finished after
// a newer one started and were discarded.
func (r *Recorder) RecordSearch(duration time.Duration, games int, err error, superseded bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.shelf.searches++
	switch {
	case superseded:
		r.shelf.superseded++
	case err != nil:
		r.shelf.searchErrors++
	default:
		r.shelf.gamesLoaded += games
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSearch(duration, games, err, superseded)
	}
}

// RecordDetail tracks a lazy detail load.
func (r *Recorder) RecordDetail(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.shelf.detailLoads++
	if err != nil {
		r.shelf.detailErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDetail(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ShelfSnapshot is a copy of the shelf activity counters.
type ShelfSnapshot struct {
	Searches     int
	SearchErrors int
	Superseded   int
	GamesLoaded  int
	DetailLoads  int
	DetailErrors int
}

func (r *Recorder) Shelf() ShelfSnapshot {
	if r == nil {
		return ShelfSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return ShelfSnapshot{
		Searches:     r.shelf.searches,
		SearchErrors: r.shelf.searchErrors,
		Superseded:   r.shelf.superseded,
		GamesLoaded:  r.shelf.gamesLoaded,
		DetailLoads:  r.shelf.detailLoads,
		DetailErrors: r.shelf.detailErrors,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

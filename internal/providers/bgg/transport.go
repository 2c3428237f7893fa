package bgg

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns a client whose transport logs and measures every
// outbound request. A caller-supplied client is copied, not mutated.
func resolveHTTPClient(client *http.Client, timeout time.Duration, logger *slog.Logger, recorder *metrics.Recorder) httpDoer {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	var resolved http.Client
	if client != nil {
		resolved = *client
	} else {
		resolved = http.Client{Timeout: timeout}
	}
	resolved.Transport = &loggingTransport{
		next:     resolved.Transport,
		logger:   logger,
		recorder: recorder,
	}
	return &resolved
}

func normalizeBaseURL(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

// loggingTransport tags each request with an X-Request-ID and logs its outcome.
type loggingTransport struct {
	next     http.RoundTripper
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}

	reqID := req.Header.Get(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
		req = req.Clone(req.Context())
		req.Header.Set(requestIDHeader, reqID)
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.recorder.RecordHTTPRequest(req.Method, req.URL.Host, status, duration)

	logger := logging.FromContext(req.Context(), t.logger)
	if logger == nil {
		return resp, err
	}
	attrs := []any{
		slog.String(logging.FieldRequestID, reqID),
		slog.String(logging.FieldMethod, req.Method),
		slog.String(logging.FieldURL, req.URL.Redacted()),
		slog.Int(logging.FieldStatusCode, status),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if err != nil {
		logger.Warn("outbound request failed", append(attrs, slog.Any("error", err))...)
		return resp, err
	}
	logger.Debug("outbound request complete", attrs...)
	return resp, err
}

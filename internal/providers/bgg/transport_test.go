package bgg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/bggshelf/internal/testutil"
)

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	doer := resolveHTTPClient(nil, 0, nil, nil)
	client, ok := doer.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", doer)
	}
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, client.Timeout)
	}
	if _, ok := client.Transport.(*loggingTransport); !ok {
		t.Fatalf("expected logging transport")
	}
}

func TestResolveHTTPClientDoesNotMutateCaller(t *testing.T) {
	base := &http.Client{Timeout: 2 * time.Second}
	doer := resolveHTTPClient(base, 0, nil, nil)
	if base.Transport != nil {
		t.Fatalf("expected caller client untouched")
	}
	if doer.(*http.Client).Timeout != 2*time.Second {
		t.Fatalf("expected caller timeout preserved")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL("", defaultThingURL); got != defaultThingURL {
		t.Fatalf("expected fallback, got %s", got)
	}
	if got := normalizeBaseURL(" http://x/api/ ", defaultThingURL); got != "http://x/api" {
		t.Fatalf("expected trimmed url, got %s", got)
	}
}

func TestLoggingTransportKeepsExistingRequestID(t *testing.T) {
	var seen string
	rt := &loggingTransport{next: testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		seen = req.Header.Get(requestIDHeader)
		return testutil.Response(http.StatusOK, ""), nil
	})}

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/x", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seen != "abc-123" {
		t.Fatalf("expected request id preserved, got %q", seen)
	}
}

func TestLoggingTransportLogsFailures(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rt := &loggingTransport{
		logger: logger,
		next: testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}),
	}

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/x", nil)
	if _, err := rt.RoundTrip(req); err == nil {
		t.Fatalf("expected error")
	}
	if req.Header.Get(requestIDHeader) != "" {
		t.Fatalf("expected original request not to be mutated")
	}
	if out := buf.String(); !strings.Contains(out, "outbound request failed") || !strings.Contains(out, "connection reset") {
		t.Fatalf("expected failure log, got %q", out)
	}
}

package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got != "rate limited (status=429)" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got != "provider rate limited" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "bgg", StatusCode: 404}
	if got := err.Error(); got != "This is an HTTP error: The status is 404" {
		t.Fatalf("unexpected status error text %q", got)
	}
	if st, ok := AsStatusError(fmt.Errorf("wrapped: %w", err)); !ok || st.StatusCode != 404 {
		t.Fatalf("expected to unwrap status error")
	}
	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

func TestParseErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{Provider: "bgg", Stage: "xml", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected parse error to unwrap its cause")
	}
	if got := err.Error(); got != "bgg: parse xml: unexpected EOF" {
		t.Fatalf("unexpected parse error text %q", got)
	}
}

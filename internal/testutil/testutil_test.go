package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestStaticClientAnswersWithBody(t *testing.T) {
	client := StaticClient(http.StatusTeapot, "brew")
	resp, err := client.Get("http://example.com/anything")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "brew" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestBufferLoggerCapturesOutput(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected log line in buffer, got %q", buf.String())
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.BGG.CollectionURL != defaultCollectionURL {
		t.Fatalf("expected default collection url %s, got %s", defaultCollectionURL, cfg.BGG.CollectionURL)
	}
	if cfg.BGG.ThingURL != defaultThingURL || cfg.BGG.ProxyURL != defaultProxyURL {
		t.Fatalf("unexpected detail urls %+v", cfg.BGG)
	}
	if cfg.BGG.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, cfg.BGG.HTTPTimeout)
	}
	if cfg.BGG.MinRequestInterval != 0 || cfg.BGG.RequestBurst != defaultRequestBurst {
		t.Fatalf("expected pacing disabled by default, got %+v", cfg.BGG)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envProvider, "fixture")
	t.Setenv(envCollectionURL, "http://example.com/xmlapi")
	t.Setenv(envThingURL, "http://example.com/xmlapi2")
	t.Setenv(envProxyURL, "http://relay.local")
	t.Setenv(envHTTPTimeout, "3s")
	t.Setenv(envMinRequestInterval, "2s")
	t.Setenv(envRequestBurst, "4")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envMetricsTextfile, "/tmp/bggshelf.prom")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.BGG.CollectionURL != "http://example.com/xmlapi" || cfg.BGG.ThingURL != "http://example.com/xmlapi2" {
		t.Fatalf("expected url overrides, got %+v", cfg.BGG)
	}
	if cfg.BGG.ProxyURL != "http://relay.local" {
		t.Fatalf("expected proxy override, got %s", cfg.BGG.ProxyURL)
	}
	if cfg.BGG.HTTPTimeout != 3*time.Second || cfg.BGG.MinRequestInterval != 2*time.Second || cfg.BGG.RequestBurst != 4 {
		t.Fatalf("unexpected timing overrides %+v", cfg.BGG)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log overrides %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.TextfilePath != "/tmp/bggshelf.prom" {
		t.Fatalf("unexpected metrics overrides %+v", cfg.Metrics)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")
	t.Setenv(envMinRequestInterval, "-1s")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.BGG.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.BGG.HTTPTimeout)
	}
	if cfg.BGG.MinRequestInterval != defaultMinRequestInterval {
		t.Fatalf("expected default interval on negative value, got %s", cfg.BGG.MinRequestInterval)
	}
}

func TestLoadReadsEnvFileWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "BGG_PROVIDER=fixture\nBGG_PROXY_URL=http://from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed writing env file: %v", err)
	}
	t.Setenv(envProxyURL, "http://from-env")
	// Registered for cleanup, then unset so the file can supply it.
	t.Setenv(envProvider, "")
	os.Unsetenv(envProvider)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider from env file, got %s", cfg.Provider)
	}
	if cfg.BGG.ProxyURL != "http://from-env" {
		t.Fatalf("expected process env to win over file, got %s", cfg.BGG.ProxyURL)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

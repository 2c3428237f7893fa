package config

import "time"

const (
	envProvider           = "BGG_PROVIDER"
	envCollectionURL      = "BGG_COLLECTION_URL"
	envThingURL           = "BGG_THING_URL"
	envProxyURL           = "BGG_PROXY_URL"
	envHTTPTimeout        = "BGG_HTTP_TIMEOUT"
	envMinRequestInterval = "BGG_MIN_REQUEST_INTERVAL"
	envRequestBurst       = "BGG_REQUEST_BURST"
	envLogLevel           = "LOG_LEVEL"
	envLogFormat          = "LOG_FORMAT"
	envMetricsOn          = "METRICS_ENABLED"
	envMetricsTextfile    = "METRICS_TEXTFILE"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider      = "bgg"
	defaultCollectionURL = "https://boardgamegeek.com/xmlapi"
	defaultThingURL      = "https://boardgamegeek.com/xmlapi2"
	defaultProxyURL      = "https://api.allorigins.win"
	defaultHTTPTimeout   = 15 * time.Second
	// Zero disables client-side pacing; BGG throttles on its side and we surface that.
	defaultMinRequestInterval = time.Duration(0)
	defaultRequestBurst       = 1
	defaultServiceName        = "bggshelf"

	// DefaultEnvFile is read by Load when present.
	DefaultEnvFile = ".env"
)

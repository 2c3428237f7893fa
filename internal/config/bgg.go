package config

// BGGConfig controls how we talk to BoardGameGeek and the CORS relay.
type BGGConfig struct {
	CollectionURL      string
	ThingURL           string
	ProxyURL           string
	HTTPTimeout        Duration
	MinRequestInterval Duration
	RequestBurst       int
}

func loadBGG() BGGConfig {
	return BGGConfig{
		CollectionURL:      envOrDefault(envCollectionURL, defaultCollectionURL),
		ThingURL:           envOrDefault(envThingURL, defaultThingURL),
		ProxyURL:           envOrDefault(envProxyURL, defaultProxyURL),
		HTTPTimeout:        durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		MinRequestInterval: durationEnvOrDefault(envMinRequestInterval, defaultMinRequestInterval),
		RequestBurst:       intEnvOrDefault(envRequestBurst, defaultRequestBurst),
	}
}

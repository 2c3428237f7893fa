package bgg

import "time"

const (
	providerName = "bgg"

	defaultCollectionURL = "https://boardgamegeek.com/xmlapi"
	defaultThingURL      = "https://boardgamegeek.com/xmlapi2"
	defaultProxyURL      = "https://api.allorigins.win"
	defaultHTTPTimeout   = 15 * time.Second

	// Collections for heavy users run to a few MB.
	maxBodyBytes      = 32 << 20
	maxErrorBodyBytes = 512

	requestIDHeader = "X-Request-ID"
)

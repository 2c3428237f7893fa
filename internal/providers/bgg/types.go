package bgg

// relayEnvelope is the JSON wrapper the CORS relay puts around the upstream body.
type relayEnvelope struct {
	Contents *string     `json:"contents"`
	Status   relayStatus `json:"status"`
}

type relayStatus struct {
	URL      string `json:"url"`
	HTTPCode int    `json:"http_code"`
}

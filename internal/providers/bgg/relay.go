package bgg

import (
	"bytes"
	"encoding/json"
	"strings"
)

// unwrapRelay returns the upstream body carried by the relay and the upstream
// status it reported, or 0 when unknown. Bodies that are not a relay envelope
// are returned untouched.
func unwrapRelay(body []byte) (string, int) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return string(body), 0
	}
	var env relayEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Contents == nil {
		return string(body), 0
	}
	return *env.Contents, env.Status.HTTPCode
}

// relayUnescape strips the literal escape sequences the relay leaves in the
// body, in this order: `\t`, `\n`, then any remaining backslash.
func relayUnescape(s string) string {
	s = strings.ReplaceAll(s, `\t`, "")
	s = strings.ReplaceAll(s, `\n`, "")
	return strings.ReplaceAll(s, `\`, "")
}

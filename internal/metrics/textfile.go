package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNoGatherer is returned when a textfile flush is requested with metrics disabled.
var ErrNoGatherer = errors.New("metrics: no gatherer configured")

// WriteTextfile writes the gathered metrics in Prometheus text format to path,
// suitable for node_exporter's textfile collector. The write is atomic.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if gatherer == nil {
		return ErrNoGatherer
	}
	if path == "" {
		return errors.New("metrics: textfile path is empty")
	}
	return prometheus.WriteToTextfile(path, gatherer)
}

// File: keepalive/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus-backed recorder for scrape-based deployments.

package keepalive

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-body/api"
)

var _ api.Recorder = (*Metrics)(nil)

// Metrics exports body activity as Prometheus counters.
type Metrics struct {
	bytes   prometheus.Counter
	frames  prometheus.Counter
	nonData prometheus.Counter
}

// NewMetrics registers the counters with reg and returns the
// recorder. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hioload",
			Subsystem: "body",
			Name:      "data_bytes_total",
			Help:      "Body data bytes observed.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hioload",
			Subsystem: "body",
			Name:      "data_frames_total",
			Help:      "Body data frames observed.",
		}),
		nonData: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hioload",
			Subsystem: "body",
			Name:      "non_data_events_total",
			Help:      "Trailer and other non-data events observed.",
		}),
	}
	for _, c := range []prometheus.Collector{m.bytes, m.frames, m.nonData} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordData implements api.Recorder.
func (m *Metrics) RecordData(n int) {
	m.bytes.Add(float64(n))
	m.frames.Inc()
}

// RecordNonData implements api.Recorder.
func (m *Metrics) RecordNonData() {
	m.nonData.Inc()
}

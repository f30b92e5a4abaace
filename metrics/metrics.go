// Package metrics exposes Prometheus instrumentation for the dispatch
// pipeline: turn counts per domain, agent failures and end-to-end turn
// latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors recorded by the dispatcher.
type Metrics struct {
	turnsTotal   *prometheus.CounterVec
	failures     *prometheus.CounterVec
	turnDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// for the process-global registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		turnsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "multichat",
			Name:      "turns_total",
			Help:      "Processed turns by routed domain.",
		}, []string{"domain"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "multichat",
			Name:      "agent_failures_total",
			Help:      "Agent calls that returned an unsuccessful result.",
		}, []string{"domain"}),
		turnDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "multichat",
			Name:      "turn_duration_seconds",
			Help:      "End-to-end turn processing latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"domain"}),
	}
}

// ObserveTurn records one completed turn.
func (m *Metrics) ObserveTurn(domain string, dur time.Duration, success bool) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(domain).Inc()
	m.turnDuration.WithLabelValues(domain).Observe(dur.Seconds())
	if !success {
		m.failures.WithLabelValues(domain).Inc()
	}
}

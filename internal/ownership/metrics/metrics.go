// Package metrics defines Prometheus collectors for the ownership
// reconciliation flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for ownership reconciliation.
type Metrics struct {
	Verdicts          *prometheus.CounterVec
	ReconcileDuration prometheus.Histogram
	Panics            prometheus.Counter
}

// New registers the ownership collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "platerra_ownership_verdicts_total",
			Help: "Reconciliation verdicts by outcome reason.",
		}, []string{"verdict", "reason"}),
		ReconcileDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "platerra_ownership_reconcile_duration_seconds",
			Help:    "End-to-end duration of ownership reconciliation.",
			Buckets: prometheus.DefBuckets,
		}),
		Panics: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_ownership_panics_recovered_total",
			Help: "Panics recovered inside the reconciliation flow.",
		}),
	}
}

// RecordVerdict increments the verdict counter. reason is empty for valid
// verdicts and is recorded as "none".
func (m *Metrics) RecordVerdict(verdict, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.Verdicts.WithLabelValues(verdict, reason).Inc()
}

// ObserveReconcile records the duration of one reconciliation in seconds.
func (m *Metrics) ObserveReconcile(seconds float64) {
	if m == nil {
		return
	}
	m.ReconcileDuration.Observe(seconds)
}

// RecordPanic counts a recovered panic.
func (m *Metrics) RecordPanic() {
	if m == nil {
		return
	}
	m.Panics.Inc()
}

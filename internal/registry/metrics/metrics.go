package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for registry lookups.
type Metrics struct {
	Lookups        *prometheus.CounterVec
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	LookupDuration prometheus.Histogram
}

// New creates and registers the registry lookup metrics.
func New() *Metrics {
	return &Metrics{
		Lookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "platerra_registry_lookups_total",
			Help: "Total registry lookups, labeled by outcome (found, not_found, error)",
		}, []string{"outcome"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_registry_cache_hits_total",
			Help: "Total registry cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_registry_cache_misses_total",
			Help: "Total registry cache misses",
		}),
		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "platerra_registry_lookup_duration_seconds",
			Help:    "Duration of registry lookups in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordLookup counts a lookup by outcome.
func (m *Metrics) RecordLookup(outcome string) {
	m.Lookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordCacheHit()  { m.CacheHits.Inc() }
func (m *Metrics) RecordCacheMiss() { m.CacheMisses.Inc() }

// ObserveLookupDuration records the duration of a lookup.
func (m *Metrics) ObserveLookupDuration(seconds float64) {
	m.LookupDuration.Observe(seconds)
}

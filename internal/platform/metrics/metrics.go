package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus metrics.
type Metrics struct {
	VehiclesRegistered prometheus.Counter
	VehiclesRemoved    prometheus.Counter
	ProfileUpdates     prometheus.Counter
	RestrictionChecks  *prometheus.CounterVec
	EndpointLatency    *prometheus.HistogramVec
}

// New creates and registers all application-level Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		VehiclesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_vehicles_registered_total",
			Help: "Total number of vehicles registered after a valid ownership verdict",
		}),
		VehiclesRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_vehicles_removed_total",
			Help: "Total number of vehicles removed by their owners",
		}),
		ProfileUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "platerra_profile_updates_total",
			Help: "Total number of profile updates",
		}),
		RestrictionChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "platerra_restriction_checks_total",
			Help: "Total number of pico y placa checks, labeled by city",
		}, []string{"city"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "platerra_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) IncrementVehiclesRegistered() {
	m.VehiclesRegistered.Inc()
}

func (m *Metrics) IncrementVehiclesRemoved() {
	m.VehiclesRemoved.Inc()
}

func (m *Metrics) IncrementProfileUpdates() {
	m.ProfileUpdates.Inc()
}

func (m *Metrics) IncrementRestrictionChecks(city string) {
	m.RestrictionChecks.WithLabelValues(city).Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

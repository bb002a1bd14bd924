// Package httptransport wires the HTTP surface: middleware stack, public
// health and metrics endpoints, and the authenticated /v1 API.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"platerra/internal/audit"
	"platerra/internal/platform/health"
	"platerra/internal/platform/metrics"
	"platerra/internal/platform/middleware"
	profilehandler "platerra/internal/profile/handler"
	"platerra/internal/restriction"
	vehiclehandler "platerra/internal/vehicle/handler"
)

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	Logger         *slog.Logger
	TokenValidator middleware.TokenValidator
	Health         *health.Handler
	Metrics        *metrics.Metrics
	Vehicles       *vehiclehandler.Handler
	Profile        *profilehandler.Handler
	Restrictions   *restriction.Handler
	Audit          *audit.Handler

	// AdminKeyHash guards the admin endpoints; empty hides them.
	AdminKeyHash string
	// RegistrySeeder, when set, is mounted as an admin endpoint that loads
	// registry fixtures in dev mode.
	RegistrySeeder http.Handler

	RequestTimeout time.Duration
}

// NewRouter wires all endpoints with the middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Device)
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(endpointLatency(cfg.Metrics))
	}

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(cfg.TokenValidator, cfg.Logger))

		if cfg.Vehicles != nil {
			cfg.Vehicles.Register(r)
		}
		if cfg.Profile != nil {
			cfg.Profile.Register(r)
		}
		if cfg.Restrictions != nil {
			cfg.Restrictions.Register(r)
		}
		if cfg.Audit != nil {
			cfg.Audit.Register(r)
		}
	})

	if cfg.RegistrySeeder != nil {
		r.With(middleware.RequireAdminKey(cfg.AdminKeyHash, cfg.Logger)).
			Post("/admin/registry/seed", cfg.RegistrySeeder.ServeHTTP)
	}

	return r
}

// endpointLatency observes request duration per matched route pattern, so
// parameterized paths aggregate under one label.
func endpointLatency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			endpoint := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if pattern := routeCtx.RoutePattern(); pattern != "" {
					endpoint = pattern
				}
			}
			m.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
		})
	}
}

// Command server runs the platerra HTTP service.
//
// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"platerra/internal/audit"
	httptransport "platerra/internal/http"
	ownmetrics "platerra/internal/ownership/metrics"
	ownservice "platerra/internal/ownership/service"
	"platerra/internal/ownership/tracer"
	"platerra/internal/platform/config"
	"platerra/internal/platform/database"
	"platerra/internal/platform/health"
	"platerra/internal/platform/httpserver"
	"platerra/internal/platform/kafka/producer"
	"platerra/internal/platform/logger"
	"platerra/internal/platform/metrics"
	platformredis "platerra/internal/platform/redis"
	profilehandler "platerra/internal/profile/handler"
	profileservice "platerra/internal/profile/service"
	profilestore "platerra/internal/profile/store"
	"platerra/internal/registry"
	regcache "platerra/internal/registry/cache"
	regclient "platerra/internal/registry/client"
	regmetrics "platerra/internal/registry/metrics"
	regstore "platerra/internal/registry/store"
	"platerra/internal/restriction"
	"platerra/internal/token"
	vehiclehandler "platerra/internal/vehicle/handler"
	vehicleservice "platerra/internal/vehicle/service"
	vehiclestore "platerra/internal/vehicle/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing platerra",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"version", health.Version,
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	appMetrics := metrics.New()
	reconcileMetrics := ownmetrics.New()
	lookupMetrics := regmetrics.New()

	pool, err := database.New(cfg.Database)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Registry lookup: external HTTP registry in production, seedable memory
	// registry in dev mode.
	var lookup registry.Lookup
	var memRegistry *regstore.Memory
	if cfg.Registry.BaseURL != "" {
		lookup = regclient.New(cfg.Registry.BaseURL, cfg.Registry.APIKey, cfg.Registry.Timeout,
			regclient.WithMetrics(lookupMetrics))
	} else {
		memRegistry = regstore.NewMemory()
		lookup = memRegistry
		log.Warn("REGISTRY_BASE_URL not set, using in-memory registry")
	}
	if redisClient != nil {
		lookup = regcache.New(lookup, redisClient.Client, cfg.Registry.CacheTTL, lookupMetrics)
	}

	reconciler := ownservice.New(lookup, log,
		ownservice.WithVerificationDelay(cfg.Registry.VerificationDelay),
		ownservice.WithTracer(tracer.NewOTel()),
		ownservice.WithMetrics(reconcileMetrics),
	)

	var vehicles vehiclestore.Store
	var profiles profilestore.Store
	if pool != nil {
		vehicles = vehiclestore.NewPostgres(pool.DB())
		profiles = profilestore.NewPostgres(pool.DB())
	} else {
		vehicles = vehiclestore.NewMemory()
		profiles = profilestore.NewMemory()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	var auditStore audit.Store
	var kafkaProducer *producer.Producer
	if cfg.Kafka.Brokers != "" {
		producerCfg := producer.DefaultConfig()
		producerCfg.Brokers = cfg.Kafka.Brokers
		kafkaProducer, err = producer.New(producerCfg, log)
		if err != nil {
			return err
		}
		defer kafkaProducer.Close() //nolint:errcheck // flushed internally
		auditStore = audit.NewKafkaStore(kafkaProducer, cfg.Kafka.AuditTopic)
	} else {
		auditStore = audit.NewInMemoryStore()
	}
	auditor := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer auditor.Close()

	profileSvc := profileservice.New(profiles, log,
		profileservice.WithMetrics(appMetrics),
		profileservice.WithAuditPublisher(auditor),
	)
	vehicleSvc := vehicleservice.New(vehicles, profileSvc, reconciler, log,
		vehicleservice.WithAuditPublisher(auditor),
		vehicleservice.WithMetrics(appMetrics),
	)

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", withTimeout(pool.Health))
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", withTimeout(redisClient.Health))
	}
	if kafkaProducer != nil {
		healthHandler.RegisterCheck("kafka", withTimeout(func(ctx context.Context) error {
			if !kafkaProducer.Healthy(ctx) {
				return errors.New("kafka unreachable")
			}
			return nil
		}))
	}

	var seeder http.Handler
	if memRegistry != nil {
		seeder = memRegistry.SeedHandler(log)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		TokenValidator: token.NewValidator(cfg.JWTSigningKey),
		Health:         healthHandler,
		Metrics:        appMetrics,
		Vehicles:       vehiclehandler.New(vehicleSvc, log),
		Profile:        profilehandler.New(profileSvc, log),
		Restrictions:   restriction.NewHandler(restriction.New(), log, appMetrics),
		Audit:          audit.NewHandler(auditor, log),
		AdminKeyHash:   cfg.AdminKeyHash,
		RegistrySeeder: seeder,
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if redisClient != nil {
		g.Go(func() error {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					redisClient.RecordPoolStats()
				}
			}
		})
	}

	return g.Wait()
}

// withTimeout adapts a context-aware health probe to the health handler's
// CheckFunc signature.
func withTimeout(check func(context.Context) error) health.CheckFunc {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return check(ctx)
	}
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Registry holds configuration for the external vehicle registry (RUNT-style)
// lookup client.
type Registry struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// VerificationDelay simulates the latency of the real registry when the
	// in-memory registry is used. Zero disables the delay entirely.
	VerificationDelay time.Duration
	CacheTTL          time.Duration
}

// Database holds connection pool configuration.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Redis holds configuration for the optional lookup cache.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka holds configuration for the audit event sink.
type Kafka struct {
	Brokers    string
	AuditTopic string
}

// Server captures top-level service configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
	// AdminKeyHash is the bcrypt hash of the key expected on admin endpoints.
	// Empty disables the admin surface.
	AdminKeyHash string

	Registry Registry
	Database Database
	Redis    Redis
	Kafka    Kafka
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:          envOr("PLATERRA_ADDR", ":8080"),
		Environment:   envOr("PLATERRA_ENV", "development"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		AdminKeyHash:  os.Getenv("ADMIN_KEY_HASH"),
		Registry: Registry{
			BaseURL:           os.Getenv("REGISTRY_BASE_URL"),
			APIKey:            os.Getenv("REGISTRY_API_KEY"),
			Timeout:           durationOr("REGISTRY_TIMEOUT", 5*time.Second),
			VerificationDelay: durationOr("REGISTRY_VERIFICATION_DELAY", 0),
			CacheTTL:          durationOr("REGISTRY_CACHE_TTL", 5*time.Minute),
		},
		Database: Database{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    intOr("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    intOr("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: durationOr("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: intOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  durationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers:    os.Getenv("KAFKA_BROKERS"),
			AuditTopic: envOr("KAFKA_AUDIT_TOPIC", "platerra.audit"),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Package cache provides a Redis-backed read-through cache for registry
// lookups. Registry data changes rarely (ownership transfers take days), so a
// short TTL shields the external registry from repeated lookups for the same
// plate without risking meaningfully stale verdicts.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"platerra/internal/registry"
	"platerra/internal/registry/metrics"
	"platerra/internal/registry/models"
)

const keyPrefix = "registry:plate:"

// Commands is the subset of redis operations the cache uses. *redis.Client
// satisfies it.
type Commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Lookup decorates a registry.Lookup with TTL-based Redis caching.
// Only found records are cached; not-found and error outcomes always go
// through so a freshly registered vehicle is visible immediately.
type Lookup struct {
	next     registry.Lookup
	client   Commands
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

var _ registry.Lookup = (*Lookup)(nil)

// New constructs a caching lookup in front of next. Metrics may be nil.
func New(next registry.Lookup, client Commands, cacheTTL time.Duration, m *metrics.Metrics) *Lookup {
	return &Lookup{
		next:     next,
		client:   client,
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

// Find returns the cached record when present, otherwise delegates to the
// wrapped lookup and caches a found record. Cache failures degrade to a
// direct lookup rather than failing the call.
func (l *Lookup) Find(ctx context.Context, plate string) (*models.Record, error) {
	key := keyPrefix + plate

	data, err := l.client.Get(ctx, key).Bytes()
	if err == nil {
		var record models.Record
		if decodeErr := json.Unmarshal(data, &record); decodeErr == nil {
			l.recordHit()
			return &record, nil
		}
		// Corrupt entry: fall through to the real lookup and overwrite.
	}
	// redis.Nil and transport errors both fall through to the real lookup.
	l.recordMiss()

	record, err := l.next.Find(ctx, plate)
	if err != nil {
		return nil, err
	}

	if payload, encodeErr := json.Marshal(record); encodeErr == nil {
		// Best-effort write; a failed cache store must not fail the lookup.
		_ = l.client.Set(ctx, key, payload, l.cacheTTL).Err()
	}

	return record, nil
}

func (l *Lookup) recordHit() {
	if l.metrics != nil {
		l.metrics.RecordCacheHit()
	}
}

func (l *Lookup) recordMiss() {
	if l.metrics != nil {
		l.metrics.RecordCacheMiss()
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platerra/internal/registry"
	"platerra/internal/registry/models"
	id "platerra/pkg/domain"
)

type setCall struct {
	key     string
	payload []byte
	ttl     time.Duration
}

// fakeRedis serves Get from data and records Set calls. A non-nil getErr
// simulates a transport failure.
type fakeRedis struct {
	data   map[string]string
	getErr error
	sets   []setCall
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.sets = append(f.sets, setCall{key: key, payload: value.([]byte), ttl: expiration})
	return redis.NewStatusResult("OK", nil)
}

type stubLookup struct {
	record *models.Record
	err    error
	calls  int
}

func (s *stubLookup) Find(context.Context, string) (*models.Record, error) {
	s.calls++
	return s.record, s.err
}

func testRecord() *models.Record {
	return &models.Record{
		Plate:               "ABC123",
		OwnerDocumentType:   id.DocumentTypeCitizenID,
		OwnerDocumentNumber: "1020304050",
		OwnerFullName:       "Maria Fernanda Lopez",
		VehicleBrand:        "Renault",
		VehicleModel:        "Logan",
		VehicleYear:         2019,
		VehicleColor:        "Gris",
		VehicleTypeLabel:    "Automovil",
	}
}

func TestFindCacheHitSkipsLookup(t *testing.T) {
	payload, err := json.Marshal(testRecord())
	require.NoError(t, err)

	rdb := &fakeRedis{data: map[string]string{"registry:plate:ABC123": string(payload)}}
	next := &stubLookup{record: testRecord()}
	l := New(next, rdb, time.Minute, nil)

	record, err := l.Find(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testRecord(), record)
	assert.Zero(t, next.calls)
	assert.Empty(t, rdb.sets)
}

func TestFindMissCachesFoundRecord(t *testing.T) {
	rdb := &fakeRedis{}
	next := &stubLookup{record: testRecord()}
	l := New(next, rdb, 5*time.Minute, nil)

	record, err := l.Find(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testRecord(), record)
	assert.Equal(t, 1, next.calls)

	require.Len(t, rdb.sets, 1)
	assert.Equal(t, "registry:plate:ABC123", rdb.sets[0].key)
	assert.Equal(t, 5*time.Minute, rdb.sets[0].ttl)

	var cached models.Record
	require.NoError(t, json.Unmarshal(rdb.sets[0].payload, &cached))
	assert.Equal(t, *testRecord(), cached)
}

func TestFindNotFoundPassesThrough(t *testing.T) {
	rdb := &fakeRedis{}
	next := &stubLookup{err: registry.ErrNotFound}
	l := New(next, rdb, time.Minute, nil)

	_, err := l.Find(context.Background(), "XYZ789")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Equal(t, 1, next.calls)
	assert.Empty(t, rdb.sets, "not-found outcomes must never be cached")
}

func TestFindLookupErrorPassesThrough(t *testing.T) {
	rdb := &fakeRedis{}
	next := &stubLookup{err: registry.NewLookupError(registry.ErrorOutage, "test", "down", nil)}
	l := New(next, rdb, time.Minute, nil)

	_, err := l.Find(context.Background(), "ABC123")
	assert.Equal(t, registry.ErrorOutage, registry.GetCategory(err))
	assert.Empty(t, rdb.sets)
}

func TestFindCorruptEntryFallsThroughAndOverwrites(t *testing.T) {
	rdb := &fakeRedis{data: map[string]string{"registry:plate:ABC123": "{not json"}}
	next := &stubLookup{record: testRecord()}
	l := New(next, rdb, time.Minute, nil)

	record, err := l.Find(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testRecord(), record)
	assert.Equal(t, 1, next.calls)
	require.Len(t, rdb.sets, 1)
}

func TestFindRedisFailureDegradesToLookup(t *testing.T) {
	rdb := &fakeRedis{getErr: errors.New("connection refused")}
	next := &stubLookup{record: testRecord()}
	l := New(next, rdb, time.Minute, nil)

	record, err := l.Find(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testRecord(), record)
	assert.Equal(t, 1, next.calls)
}

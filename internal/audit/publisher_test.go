package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platerra/internal/platform/middleware"
)

func TestPublisherSyncEmit(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)

	err := p.Emit(context.Background(), Event{
		UserID: "user-1",
		Action: ActionVehicleRegistered,
		Plate:  "ABC123",
	})
	require.NoError(t, err)

	events, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ActionVehicleRegistered, events[0].Action)
	assert.False(t, events[0].Timestamp.IsZero(), "Emit must stamp events")
}

func TestPublisherAsyncEmitDrains(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store, WithAsyncBuffer(16))

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Emit(context.Background(), Event{
			UserID: "user-1",
			Action: ActionOwnershipChecked,
		}))
	}
	p.Close()

	events, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestPublisherStampsDeviceFromContext(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)

	ctx := middleware.WithDevice(context.Background(), "android")
	require.NoError(t, p.Emit(ctx, Event{
		UserID: "user-1",
		Action: ActionOwnershipChecked,
	}))

	events, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "android", events[0].Device)
}

func TestPublisherPreservesExplicitTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)

	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, p.Emit(context.Background(), Event{
		UserID:    "user-1",
		Action:    ActionProfileUpdated,
		Timestamp: stamp,
	}))

	events, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, stamp, events[0].Timestamp)
}

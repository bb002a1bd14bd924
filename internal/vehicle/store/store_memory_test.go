package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platerra/internal/sentinel"
	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
)

func newVehicle(userID id.UserID, plate string) *models.Vehicle {
	return &models.Vehicle{
		ID:        id.NewVehicleID(),
		UserID:    userID,
		Plate:     plate,
		Brand:     "Mazda",
		Model:     "3",
		Year:      2021,
		Color:     "Rojo",
		TypeID:    "car",
		CreatedAt: time.Now().UTC(),
	}
}

func TestInMemoryStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.UserID{1}

	vehicle := newVehicle(userID, "ABC123")
	require.NoError(t, s.Save(ctx, vehicle))

	found, err := s.FindByID(ctx, userID, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.Plate, found.Plate)

	// Mutating the returned copy must not affect the stored record.
	found.Plate = "ZZZ999"
	again, err := s.FindByID(ctx, userID, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", again.Plate)
}

func TestInMemoryStore_DuplicatePlateConflicts(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.UserID{1}

	require.NoError(t, s.Save(ctx, newVehicle(userID, "ABC123")))

	err := s.Save(ctx, newVehicle(userID, "abc123"))
	assert.ErrorIs(t, err, sentinel.ErrConflict)

	// A different user can register the same plate.
	assert.NoError(t, s.Save(ctx, newVehicle(id.UserID{2}, "ABC123")))
}

func TestInMemoryStore_FindByPlate(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.UserID{1}

	vehicle := newVehicle(userID, "ABC123")
	require.NoError(t, s.Save(ctx, vehicle))

	found, err := s.FindByPlate(ctx, userID, "abc123")
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, found.ID)

	_, err = s.FindByPlate(ctx, userID, "XYZ789")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = s.FindByPlate(ctx, id.UserID{2}, "ABC123")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryStore_ListByUserOrdered(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.UserID{1}

	first := newVehicle(userID, "AAA111")
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := newVehicle(userID, "BBB222")

	require.NoError(t, s.Save(ctx, second))
	require.NoError(t, s.Save(ctx, first))

	vehicles, err := s.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "AAA111", vehicles[0].Plate)
	assert.Equal(t, "BBB222", vehicles[1].Plate)

	empty, err := s.ListByUser(ctx, id.UserID{9})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.UserID{1}

	vehicle := newVehicle(userID, "ABC123")
	require.NoError(t, s.Save(ctx, vehicle))

	require.NoError(t, s.Delete(ctx, userID, vehicle.ID))
	_, err := s.FindByID(ctx, userID, vehicle.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, userID, vehicle.ID), sentinel.ErrNotFound)

	// Deleting another user's vehicle must not be possible.
	other := newVehicle(id.UserID{2}, "XYZ789")
	require.NoError(t, s.Save(ctx, other))
	assert.ErrorIs(t, s.Delete(ctx, userID, other.ID), sentinel.ErrNotFound)
}

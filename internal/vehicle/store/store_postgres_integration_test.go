//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"platerra/internal/sentinel"
	"platerra/internal/vehicle/models"
	"platerra/internal/vehicle/store"
	id "platerra/pkg/domain"
	"platerra/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "vehicles")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newVehicle(userID id.UserID, plate string) *models.Vehicle {
	return &models.Vehicle{
		ID:        id.NewVehicleID(),
		UserID:    userID,
		Plate:     plate,
		Brand:     "Chevrolet",
		Model:     "Spark",
		Year:      2020,
		Color:     "Blanco",
		TypeID:    "car",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestSaveAndFindRoundTrip() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())
	vehicle := s.newVehicle(userID, "ABC123")

	s.Require().NoError(s.store.Save(ctx, vehicle))

	found, err := s.store.FindByID(ctx, userID, vehicle.ID)
	s.Require().NoError(err)
	s.Equal(vehicle.Plate, found.Plate)
	s.Equal(vehicle.Brand, found.Brand)
	s.Equal(vehicle.Year, found.Year)
	s.Equal(vehicle.TypeID, found.TypeID)
	s.WithinDuration(vehicle.CreatedAt, found.CreatedAt, time.Millisecond)
}

func (s *PostgresStoreSuite) TestDuplicatePlateForSameUserConflicts() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())

	s.Require().NoError(s.store.Save(ctx, s.newVehicle(userID, "ABC123")))

	err := s.store.Save(ctx, s.newVehicle(userID, "ABC123"))
	s.ErrorIs(err, sentinel.ErrConflict)

	s.NoError(s.store.Save(ctx, s.newVehicle(id.UserID(uuid.New()), "ABC123")))
}

func (s *PostgresStoreSuite) TestListByUserScopedAndOrdered() {
	ctx := context.Background()
	userID := id.UserID(uuid.New())

	older := s.newVehicle(userID, "BBB222")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	s.Require().NoError(s.store.Save(ctx, older))
	s.Require().NoError(s.store.Save(ctx, s.newVehicle(userID, "AAA111")))
	s.Require().NoError(s.store.Save(ctx, s.newVehicle(id.UserID(uuid.New()), "CCC333")))

	vehicles, err := s.store.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(vehicles, 2)
	s.Equal("BBB222", vehicles[0].Plate)
	s.Equal("AAA111", vehicles[1].Plate)
}

func (s *PostgresStoreSuite) TestDeleteIsScopedToOwner() {
	ctx := context.Background()
	owner := id.UserID(uuid.New())
	vehicle := s.newVehicle(owner, "ABC123")
	s.Require().NoError(s.store.Save(ctx, vehicle))

	s.ErrorIs(s.store.Delete(ctx, id.UserID(uuid.New()), vehicle.ID), sentinel.ErrNotFound)

	s.Require().NoError(s.store.Delete(ctx, owner, vehicle.ID))
	_, err := s.store.FindByID(ctx, owner, vehicle.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

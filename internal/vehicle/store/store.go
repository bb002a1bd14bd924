// Package store persists registered vehicles.
//
// Error contract: stores return sentinel.ErrNotFound when the vehicle does
// not exist, sentinel.ErrConflict when the user already registered the plate,
// and wrapped infrastructure errors otherwise. Services translate these into
// domain errors exactly once.
package store

import (
	"context"

	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
)

type Store interface {
	Save(ctx context.Context, vehicle *models.Vehicle) error
	FindByID(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) (*models.Vehicle, error)
	FindByPlate(ctx context.Context, userID id.UserID, plate string) (*models.Vehicle, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Vehicle, error)
	Delete(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) error
}

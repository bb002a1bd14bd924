package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"platerra/internal/sentinel"
	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
)

// InMemoryStore keeps vehicles in memory for tests and local development.
type InMemoryStore struct {
	mu       sync.RWMutex
	vehicles map[id.UserID]map[id.VehicleID]*models.Vehicle
}

// NewMemory constructs an empty in-memory vehicle store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{vehicles: make(map[id.UserID]map[id.VehicleID]*models.Vehicle)}
}

func (s *InMemoryStore) Save(_ context.Context, vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.vehicles[vehicle.UserID]
	if !ok {
		byID = make(map[id.VehicleID]*models.Vehicle)
		s.vehicles[vehicle.UserID] = byID
	}
	for _, existing := range byID {
		if strings.EqualFold(existing.Plate, vehicle.Plate) {
			return sentinel.ErrConflict
		}
	}
	copyVehicle := *vehicle
	byID[vehicle.ID] = &copyVehicle
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, userID id.UserID, vehicleID id.VehicleID) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vehicle, ok := s.vehicles[userID][vehicleID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copyVehicle := *vehicle
	return &copyVehicle, nil
}

func (s *InMemoryStore) FindByPlate(_ context.Context, userID id.UserID, plate string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, vehicle := range s.vehicles[userID] {
		if strings.EqualFold(vehicle.Plate, plate) {
			copyVehicle := *vehicle
			return &copyVehicle, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make([]*models.Vehicle, 0, len(s.vehicles[userID]))
	for _, vehicle := range s.vehicles[userID] {
		copyVehicle := *vehicle
		vehicles = append(vehicles, &copyVehicle)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		if vehicles[i].CreatedAt.Equal(vehicles[j].CreatedAt) {
			return vehicles[i].Plate < vehicles[j].Plate
		}
		return vehicles[i].CreatedAt.Before(vehicles[j].CreatedAt)
	})
	return vehicles, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID id.UserID, vehicleID id.VehicleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID := s.vehicles[userID]
	if _, ok := byID[vehicleID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(byID, vehicleID)
	return nil
}

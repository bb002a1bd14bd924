package store

import (
	"context"
	"sync"

	"platerra/internal/profile/models"
	"platerra/internal/sentinel"
	id "platerra/pkg/domain"
)

// InMemoryStore keeps profiles in memory for tests and local development.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]*models.Profile
}

// NewMemory constructs an empty in-memory profile store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.UserID]*models.Profile)}
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copyProfile := *profile
	return &copyProfile, nil
}

func (s *InMemoryStore) Upsert(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	copyProfile := *profile
	s.profiles[profile.UserID] = &copyProfile
	return nil
}

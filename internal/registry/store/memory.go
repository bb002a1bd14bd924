package store

import (
	"context"
	"strings"
	"sync"

	"platerra/internal/registry"
	"platerra/internal/registry/models"
)

// Memory is a seedable in-memory registry used in development mode and tests.
// Records are keyed by canonical (uppercased) plate.
type Memory struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

var _ registry.Lookup = (*Memory)(nil)

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]models.Record)}
}

// Find returns the record for the plate or registry.ErrNotFound.
func (m *Memory) Find(_ context.Context, plate string) (*models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[strings.ToUpper(plate)]
	if !ok {
		return nil, registry.ErrNotFound
	}
	return &record, nil
}

// Put inserts or replaces a record, keyed by its canonical plate.
func (m *Memory) Put(record models.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.Plate = strings.ToUpper(record.Plate)
	m.records[record.Plate] = record
}

// Seed loads a batch of records, replacing any existing entries for the same
// plates. Used by the dev-mode admin endpoint and test fixtures.
func (m *Memory) Seed(records []models.Record) {
	for _, record := range records {
		m.Put(record)
	}
}

// Len reports the number of seeded records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

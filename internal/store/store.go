// Package store holds the in-memory plant record collection served by the
// HTTP API. The collection is replaced or appended to wholesale by ingestion
// passes and read concurrently by request handlers.
package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

// ErrNotLoaded is returned by readiness checks before the first successful
// dataset load.
var ErrNotLoaded = errors.New("no dataset loaded yet")

// Store is a thread-safe in-memory collection of plant records.
type Store struct {
	mu      sync.RWMutex
	records []domain.PlantRecord
	loaded  atomic.Bool
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace swaps the whole collection for the given records.
func (s *Store) Replace(records []domain.PlantRecord) {
	s.mu.Lock()
	s.records = append([]domain.PlantRecord(nil), records...)
	s.mu.Unlock()
	s.loaded.Store(true)
}

// Append adds records to the existing collection.
func (s *Store) Append(records []domain.PlantRecord) {
	s.mu.Lock()
	s.records = append(s.records, records...)
	s.mu.Unlock()
	s.loaded.Store(true)
}

// All returns a copy of the current collection.
func (s *Store) All() []domain.PlantRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PlantRecord(nil), s.records...)
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// CheckReadiness reports whether the store has been populated at least once.
func (s *Store) CheckReadiness(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.loaded.Load() {
		return ErrNotLoaded
	}
	return nil
}

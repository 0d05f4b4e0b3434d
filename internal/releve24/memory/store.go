// Package memory holds the map-backed prior-slip index used by embedders
// that have not wired a database store, and by tests.
package memory

import (
	"context"
	"sync"

	"github.com/bwmarrin/snowflake"
)

type key struct {
	person snowflake.ID
	year   int
}

type Store struct {
	mu        sync.Mutex
	originals map[key]bool
}

func NewStore() *Store {
	return &Store{originals: make(map[key]bool)}
}

func (s *Store) HasOriginal(ctx context.Context, personID snowflake.ID, year int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.originals[key{person: personID, year: year}], nil
}

// RecordOriginal marks that an Original slip was persisted for the person
// and year.
func (s *Store) RecordOriginal(personID snowflake.ID, year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originals[key{person: personID, year: year}] = true
}

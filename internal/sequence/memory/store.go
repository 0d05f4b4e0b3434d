// Package memory holds the map-backed sequence store used by embedders
// that have not wired a database store, and by tests.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu  sync.Mutex
	max map[string]int64
}

func NewStore() *Store {
	return &Store{max: make(map[string]int64)}
}

func (s *Store) MaxSequence(ctx context.Context, prefix string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	max, ok := s.max[prefix]
	return max, ok, nil
}

// Record advances the stored max for prefix once a number has been
// persisted. Lower sequences are ignored so replays cannot move a
// sequence backwards.
func (s *Store) Record(prefix string, seq int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.max[prefix] {
		s.max[prefix] = seq
	}
}

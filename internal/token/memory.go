package token

import (
	"context"
	"sync"
)

// MemoryStore holds the pair in process memory. Used by tests and by
// ephemeral runs that must not leave tokens on disk.
type MemoryStore struct {
	mu   sync.Mutex
	pair *Pair
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save overwrites the stored pair.
func (s *MemoryStore) Save(_ context.Context, pair Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pair
	s.pair = &p
}

// Load returns a copy of the stored pair, or nil.
func (s *MemoryStore) Load(_ context.Context) *Pair {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pair == nil || s.pair.AccessToken == "" || s.pair.RefreshToken == "" {
		return nil
	}
	p := *s.pair
	return &p
}

// Clear drops the stored pair.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = nil
}

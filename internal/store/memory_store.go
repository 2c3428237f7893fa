package store

import (
	"sync"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
)

// MemoryStore keeps a thread-safe copy of the current collection, in the
// order the feed returned it.
type MemoryStore struct {
	mu    sync.RWMutex
	games []collection.GameSummary
	owner string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListGames returns a copy of the stored games in feed order.
func (s *MemoryStore) ListGames() []collection.GameSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]collection.GameSummary, len(s.games))
	copy(result, s.games)
	return result
}

// GameByName returns the first stored game with the given display name.
func (s *MemoryStore) GameByName(name string) (collection.GameSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.GameName == name {
			return g, true
		}
	}
	return collection.GameSummary{}, false
}

// Owner returns the username whose collection is stored.
func (s *MemoryStore) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

// SetGames replaces the stored collection.
func (s *MemoryStore) SetGames(owner string, games []collection.GameSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = owner
	s.games = make([]collection.GameSummary, len(games))
	copy(s.games, games)
}

// Clear drops the stored collection.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = ""
	s.games = nil
}

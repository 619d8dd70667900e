package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// MemoryStore keeps a thread-safe set of careers in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	careers map[string]domain.Career
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		careers: make(map[string]domain.Career),
	}
}

// Get retrieves a career by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (domain.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.careers[id]
	if !ok {
		return domain.Career{}, ErrNotFound
	}
	return c, nil
}

// Put inserts or replaces a career.
func (s *MemoryStore) Put(_ context.Context, c domain.Career) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.careers[c.ID] = c
	return nil
}

// List returns every career, oldest first.
func (s *MemoryStore) List(_ context.Context) ([]domain.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Career, 0, len(s.careers))
	for _, c := range s.careers {
		result = append(result, c)
	}
	sortCareers(result)
	return result, nil
}

// Delete removes a career. Deleting a missing career is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.careers, id)
	return nil
}

func sortCareers(cs []domain.Career) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].ID < cs[j].ID
		}
		return cs[i].CreatedAt.Before(cs[j].CreatedAt)
	})
}

package selection

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// Store keeps the most recently used selections, one per client session.
// Evicted selections are closed.
type Store struct {
	cache *lru.Cache
}

// NewStore creates a store holding at most size sessions.
func NewStore(size int) (*Store, error) {
	cache, err := lru.NewWithEvict(size, func(_ interface{}, value interface{}) {
		value.(*Selection).Close()
	})
	if err != nil {
		return nil, fmt.Errorf("selection: failed to create store: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, *Selection) {
	id := uuid.New().String()
	sel := New()
	s.cache.Add(id, sel)
	return id, sel
}

// Get returns the selection for id, marking it recently used.
func (s *Store) Get(id string) (*Selection, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Selection), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

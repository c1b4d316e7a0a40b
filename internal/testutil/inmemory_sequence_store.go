package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/coursebill/coursebill/internal/domain/sequence"
	ierr "github.com/coursebill/coursebill/internal/errors"
)

// InMemorySequenceStore backs the allocator in tests. ConflictsBeforeSuccess
// injects transient conflicts so the retry path can be exercised; a failed
// attempt never consumes a value, matching the storage contract.
type InMemorySequenceStore struct {
	mu       sync.Mutex
	counters map[string]*sequence.Counter

	// remaining injected conflicts per key
	conflicts map[string]int
}

func NewInMemorySequenceStore() *InMemorySequenceStore {
	return &InMemorySequenceStore{
		counters:  make(map[string]*sequence.Counter),
		conflicts: make(map[string]int),
	}
}

// ConflictsBeforeSuccess makes the next n Increment calls for key fail with
// a sequence conflict before succeeding.
func (s *InMemorySequenceStore) ConflictsBeforeSuccess(key string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conflicts[key] = n
}

func (s *InMemorySequenceStore) Increment(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts[key] > 0 {
		s.conflicts[key]--
		return 0, ierr.NewError("simulated conflict").
			Mark(ierr.ErrSequenceConflict)
	}

	c, exists := s.counters[key]
	if !exists {
		c = &sequence.Counter{Key: key, CreatedAt: time.Now().UTC()}
		s.counters[key] = c
	}
	c.Seq++
	c.UpdatedAt = time.Now().UTC()
	return c.Seq, nil
}

func (s *InMemorySequenceStore) Get(ctx context.Context, key string) (*sequence.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.counters[key]
	if !exists {
		return nil, ierr.NewError("counter not found").
			WithHintf("counter with key %s not found", key).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = make(map[string]*sequence.Counter)
	s.conflicts = make(map[string]int)
}

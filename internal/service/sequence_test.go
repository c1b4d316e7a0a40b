package service

import (
	"sort"
	"sync"
	"testing"

	"github.com/coursebill/coursebill/internal/domain/sequence"
	"github.com/coursebill/coursebill/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type SequenceAllocatorSuite struct {
	baseSuite
	allocator SequenceAllocator
}

func TestSequenceAllocator(t *testing.T) {
	suite.Run(t, new(SequenceAllocatorSuite))
}

func (s *SequenceAllocatorSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.allocator = NewSequenceAllocator(s.params())
}

func (s *SequenceAllocatorSuite) TestSequentialAllocation() {
	key := sequence.InvoiceKey("PW", 2025)

	for i := int64(1); i <= 5; i++ {
		seq, err := s.allocator.Next(s.GetContext(), key)
		s.NoError(err)
		s.Equal(i, seq)
	}
}

func (s *SequenceAllocatorSuite) TestIndependentKeys() {
	a, err := s.allocator.Next(s.GetContext(), sequence.InvoiceKey("PW", 2025))
	s.NoError(err)
	b, err := s.allocator.Next(s.GetContext(), sequence.InvoiceKey("ABO", 2025))
	s.NoError(err)
	c, err := s.allocator.Next(s.GetContext(), sequence.InvoiceKey("PW", 2026))
	s.NoError(err)

	s.Equal(int64(1), a)
	s.Equal(int64(1), b)
	s.Equal(int64(1), c)
}

func (s *SequenceAllocatorSuite) TestConcurrentAllocationsAreContiguous() {
	const n = 50
	key := sequence.InvoiceKey("PW", 2025)

	var wg sync.WaitGroup
	var mu sync.Mutex
	values := make([]int64, 0, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := s.allocator.Next(s.GetContext(), key)
			s.NoError(err)
			mu.Lock()
			values = append(values, seq)
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Len(values, n)
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	for i, v := range values {
		s.Equal(int64(i+1), v, "values must be contiguous with no duplicates or gaps")
	}
}

func (s *SequenceAllocatorSuite) TestRetriesTransientConflicts() {
	key := sequence.InvoiceKey("PW", 2025)
	store := s.GetStores().SequenceRepo.(*testutil.InMemorySequenceStore)
	store.ConflictsBeforeSuccess(key, 3)

	seq, err := s.allocator.Next(s.GetContext(), key)
	s.NoError(err)
	s.Equal(int64(1), seq, "failed attempts must not consume values")

	seq, err = s.allocator.Next(s.GetContext(), key)
	s.NoError(err)
	s.Equal(int64(2), seq)
}

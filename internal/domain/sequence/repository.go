package sequence

import (
	"context"
)

// Repository is the atomic keyed counter capability. Increment must be backed
// by a storage-level increment-and-fetch (not read-then-write): under N
// concurrent calls for the same key the returned values are exactly
// {prev+1, ..., prev+N} with no duplicates and no gaps.
//
// A transient conflict during the atomic operation surfaces as
// ierr.ErrSequenceConflict and is retried by the allocator; the failed
// attempt never consumed a value.
type Repository interface {
	Increment(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (*Counter, error)
}

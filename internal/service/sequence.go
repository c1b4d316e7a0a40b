package service

import (
	"context"
	"time"

	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/cenkalti/backoff/v4"
)

// SequenceAllocator hands out collision-free sequential values for a string
// key. The storage layer guarantees atomicity; the allocator adds bounded
// retries for transient conflicts, which are safe to repeat because a failed
// increment never consumed a value.
type SequenceAllocator interface {
	Next(ctx context.Context, key string) (int64, error)
}

type sequenceAllocator struct {
	ServiceParams
}

func NewSequenceAllocator(params ServiceParams) SequenceAllocator {
	return &sequenceAllocator{ServiceParams: params}
}

func (s *sequenceAllocator) Next(ctx context.Context, key string) (int64, error) {
	var seq int64

	operation := func() error {
		value, err := s.SequenceRepo.Increment(ctx, key)
		if err != nil {
			if ierr.IsSequenceConflict(err) {
				s.Logger.Debugw("retrying sequence allocation", "key", key, "error", err)
				return err
			}
			return backoff.Permanent(err)
		}
		seq = value
		return nil
	}

	policy := backoff.WithContext(newAllocationBackOff(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return 0, err
	}
	return seq, nil
}

func newAllocationBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second
	return b
}

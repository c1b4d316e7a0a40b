package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/coursebill/coursebill/internal/domain/booking"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
)

type InMemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*booking.Booking
}

func NewInMemoryBookingStore() *InMemoryBookingStore {
	return &InMemoryBookingStore{
		bookings: make(map[string]*booking.Booking),
	}
}

func (s *InMemoryBookingStore) Create(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[b.ID]; exists {
		return ierr.NewError("booking already exists").
			WithHintf("booking with id %s already exists", b.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	s.bookings[b.ID] = b
	return nil
}

func (s *InMemoryBookingStore) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, exists := s.bookings[id]
	if !exists || b.TenantID != types.GetTenantID(ctx) || b.Status == types.StatusDeleted {
		return nil, ierr.NewError("booking not found").
			WithHintf("booking with id %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return b, nil
}

func (s *InMemoryBookingStore) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenantID := types.GetTenantID(ctx)
	bookings := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if b.TenantID != tenantID || b.Status == types.StatusDeleted {
			continue
		}
		if filter.Matches(b) {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *InMemoryBookingStore) Update(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.bookings[b.ID]
	if !exists || existing.TenantID != types.GetTenantID(ctx) {
		return ierr.NewError("booking not found").
			WithHintf("booking with id %s not found", b.ID).
			Mark(ierr.ErrNotFound)
	}

	b.UpdatedAt = time.Now().UTC()
	s.bookings[b.ID] = b
	return nil
}

func (s *InMemoryBookingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[string]*booking.Booking)
}

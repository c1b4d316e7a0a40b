package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/coursebill/coursebill/internal/domain/offer"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
)

type InMemoryOfferStore struct {
	mu     sync.RWMutex
	offers map[string]*offer.Offer
}

func NewInMemoryOfferStore() *InMemoryOfferStore {
	return &InMemoryOfferStore{
		offers: make(map[string]*offer.Offer),
	}
}

func (s *InMemoryOfferStore) Create(ctx context.Context, o *offer.Offer) error {
	if o == nil {
		return ierr.NewError("offer cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[o.ID]; exists {
		return ierr.NewError("offer already exists").
			WithHintf("offer with id %s already exists", o.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	s.offers[o.ID] = o
	return nil
}

func (s *InMemoryOfferStore) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.offers[id]
	if !exists || o.TenantID != types.GetTenantID(ctx) || o.Status == types.StatusDeleted {
		return nil, ierr.NewError("offer not found").
			WithHintf("offer with id %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOfferStore) List(ctx context.Context) ([]*offer.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenantID := types.GetTenantID(ctx)
	offers := make([]*offer.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if o.TenantID == tenantID && o.Status != types.StatusDeleted {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (s *InMemoryOfferStore) Update(ctx context.Context, o *offer.Offer) error {
	if o == nil {
		return ierr.NewError("offer cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.offers[o.ID]
	if !exists || existing.TenantID != types.GetTenantID(ctx) {
		return ierr.NewError("offer not found").
			WithHintf("offer with id %s not found", o.ID).
			Mark(ierr.ErrNotFound)
	}

	o.UpdatedAt = time.Now().UTC()
	s.offers[o.ID] = o
	return nil
}

func (s *InMemoryOfferStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers = make(map[string]*offer.Offer)
}

package service

import (
	"context"

	"github.com/coursebill/coursebill/internal/api/dto"
	"github.com/coursebill/coursebill/internal/cache"
	"github.com/coursebill/coursebill/internal/domain/offer"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
)

type OfferService interface {
	CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error)
	GetOfferByID(ctx context.Context, id string) (*dto.OfferResponse, error)
	GetAllOffers(ctx context.Context) ([]*dto.OfferResponse, error)
}

type offerService struct {
	ServiceParams
}

func NewOfferService(params ServiceParams) OfferService {
	return &offerService{ServiceParams: params}
}

func (s *offerService) CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newOffer := req.ToOffer(ctx)
	if err := s.OfferRepo.Create(ctx, newOffer); err != nil {
		return nil, err
	}

	return dto.NewOfferResponse(newOffer), nil
}

func (s *offerService) GetOfferByID(ctx context.Context, id string) (*dto.OfferResponse, error) {
	o, err := s.OfferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewOfferResponse(o), nil
}

func (s *offerService) GetAllOffers(ctx context.Context) ([]*dto.OfferResponse, error) {
	offers, err := s.OfferRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		responses = append(responses, dto.NewOfferResponse(o))
	}
	return responses, nil
}

// lookupOffer resolves an offer through the cache, tolerating missing rows:
// classification and amount resolution have explicit fallbacks for legacy
// bookings whose offer is gone, so a nil offer is a valid outcome.
func lookupOffer(ctx context.Context, params ServiceParams, offerID string) (*offer.Offer, error) {
	if offerID == "" {
		return nil, nil
	}

	key := cache.OfferKey(types.GetTenantID(ctx), offerID)
	if cached, found := params.Cache.Get(ctx, key); found {
		if o, ok := cached.(*offer.Offer); ok {
			return o, nil
		}
	}

	o, err := params.OfferRepo.GetByID(ctx, offerID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	params.Cache.Set(ctx, key, o, cache.DefaultExpiration)
	return o, nil
}

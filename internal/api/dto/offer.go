package dto

import (
	"context"

	"github.com/coursebill/coursebill/internal/domain/offer"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
	SubType  string          `json:"sub_type"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency" binding:"required"`
	Code     string          `json:"code"`
	Location string          `json:"location"`
}

func (r *CreateOfferRequest) Validate() error {
	if r.Price.IsNegative() {
		return ierr.NewError("price cannot be negative").
			WithHint("Offer price must be a non-negative amount").
			Mark(ierr.ErrValidation)
	}
	if r.Category != "" && !types.OfferCategory(r.Category).Validate() {
		return ierr.NewError("invalid offer category").
			WithHintf("unknown category %q", r.Category).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateOfferRequest) ToOffer(ctx context.Context) *offer.Offer {
	return &offer.Offer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OFFER),
		Name:      r.Name,
		Category:  types.OfferCategory(r.Category),
		Type:      r.Type,
		SubType:   r.SubType,
		Price:     types.RoundTo2(r.Price),
		Currency:  r.Currency,
		Code:      r.Code,
		Location:  r.Location,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type OfferResponse struct {
	*offer.Offer
	Recurring bool `json:"recurring"`
}

func NewOfferResponse(o *offer.Offer) *OfferResponse {
	return &OfferResponse{
		Offer:     o,
		Recurring: offer.IsRecurring(o, "", false),
	}
}

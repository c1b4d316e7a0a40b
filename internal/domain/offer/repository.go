package offer

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context) ([]*Offer, error)
	Update(ctx context.Context, offer *Offer) error
}

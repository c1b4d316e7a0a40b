package service

import (
	"github.com/coursebill/coursebill/internal/cache"
	"github.com/coursebill/coursebill/internal/config"
	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/offer"
	"github.com/coursebill/coursebill/internal/domain/sequence"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	DB     postgres.IClient
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	OfferRepo    offer.Repository
	BookingRepo  booking.Repository
	SequenceRepo sequence.Repository
}

func NewServiceParams(
	db postgres.IClient,
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	offerRepo offer.Repository,
	bookingRepo booking.Repository,
	sequenceRepo sequence.Repository,
) ServiceParams {
	return ServiceParams{
		DB:           db,
		Logger:       logger,
		Config:       config,
		Cache:        cache,
		OfferRepo:    offerRepo,
		BookingRepo:  bookingRepo,
		SequenceRepo: sequenceRepo,
	}
}

package repository

import (
	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/offer"
	"github.com/coursebill/coursebill/internal/domain/sequence"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
	postgresRepo "github.com/coursebill/coursebill/internal/repository/postgres"
)

func NewOfferRepository(db postgres.IClient, logger *logger.Logger) offer.Repository {
	return postgresRepo.NewOfferRepository(db, logger)
}

func NewBookingRepository(db postgres.IClient, logger *logger.Logger) booking.Repository {
	return postgresRepo.NewBookingRepository(db, logger)
}

func NewSequenceRepository(db postgres.IClient, logger *logger.Logger) sequence.Repository {
	return postgresRepo.NewSequenceRepository(db, logger)
}

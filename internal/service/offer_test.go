package service

import (
	"testing"

	"github.com/coursebill/coursebill/internal/api/dto"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OfferServiceSuite struct {
	baseSuite
	service OfferService
}

func TestOfferService(t *testing.T) {
	suite.Run(t, new(OfferServiceSuite))
}

func (s *OfferServiceSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.service = NewOfferService(s.params())
}

func (s *OfferServiceSuite) TestCreateOffer() {
	resp, err := s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
		Name:     "Power Weekly",
		Category: "Weekly",
		Price:    decimal.RequireFromString("79.999"),
		Currency: "EUR",
		Code:     "PW",
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("80.00", resp.Price.StringFixed(2))
	s.True(resp.Recurring)
}

func (s *OfferServiceSuite) TestCreateOfferOneOffClassification() {
	resp, err := s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
		Name:     "Holiday Camp",
		Category: "Holiday",
		Price:    decimal.RequireFromString("199"),
		Currency: "EUR",
	})
	s.NoError(err)
	s.False(resp.Recurring)
}

func (s *OfferServiceSuite) TestCreateOfferValidation() {
	_, err := s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
		Name:     "Bad",
		Price:    decimal.RequireFromString("-1"),
		Currency: "EUR",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
		Name:     "Bad",
		Category: "NotACategory",
		Currency: "EUR",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *OfferServiceSuite) TestGetOfferByID() {
	created, err := s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
		Name:     "Power Weekly",
		Category: "Weekly",
		Price:    decimal.RequireFromString("80"),
		Currency: "EUR",
	})
	s.NoError(err)

	got, err := s.service.GetOfferByID(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(created.ID, got.ID)

	_, err = s.service.GetOfferByID(s.GetContext(), "offer_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *OfferServiceSuite) TestGetAllOffers() {
	for _, name := range []string{"A", "B", "C"} {
		_, err := s.service.CreateOffer(s.GetContext(), dto.CreateOfferRequest{
			Name:     name,
			Price:    decimal.RequireFromString("10"),
			Currency: "EUR",
		})
		s.NoError(err)
	}

	offers, err := s.service.GetAllOffers(s.GetContext())
	s.NoError(err)
	s.Len(offers, 3)
}

package service

import (
	"github.com/coursebill/coursebill/internal/testutil"
)

// baseSuite wires the in-memory stores into ServiceParams for the suites in
// this package.
type baseSuite struct {
	testutil.BaseServiceTestSuite
}

func (s *baseSuite) params() ServiceParams {
	return ServiceParams{
		DB:           s.GetDB(),
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		OfferRepo:    s.GetStores().OfferRepo,
		BookingRepo:  s.GetStores().BookingRepo,
		SequenceRepo: s.GetStores().SequenceRepo,
	}
}

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/coursebill/coursebill/internal/api/dto"
	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/offer"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingServiceSuite struct {
	baseSuite
	service BookingService
}

func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceSuite))
}

func (s *BookingServiceSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.service = NewBookingService(s.params(), NewSequenceAllocator(s.params()))
}

func (s *BookingServiceSuite) createOffer(o *offer.Offer) *offer.Offer {
	if o.ID == "" {
		o.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OFFER)
	}
	o.BaseModel = types.GetDefaultBaseModel(s.GetContext())
	s.NoError(s.GetStores().OfferRepo.Create(s.GetContext(), o))
	return o
}

func (s *BookingServiceSuite) weeklyOffer() *offer.Offer {
	return s.createOffer(&offer.Offer{
		Name:     "Power Weekly",
		Category: types.OfferCategoryWeekly,
		Price:    decimal.RequireFromString("80"),
		Currency: "EUR",
		Code:     "PW",
	})
}

func (s *BookingServiceSuite) holidayOffer() *offer.Offer {
	return s.createOffer(&offer.Offer{
		Name:     "Holiday Camp",
		Category: types.OfferCategoryHoliday,
		Price:    decimal.RequireFromString("199"),
		Currency: "EUR",
		Code:     "HC",
	})
}

func (s *BookingServiceSuite) TestCreateBookingRecurring() {
	o := s.weeklyOffer()

	resp, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	s.Equal(types.BookingStatusActive, resp.BookingStatus)
	s.Equal("EUR", resp.Currency)
	s.Require().NotNil(resp.MonthlyAmount)
	s.Equal("80.00", resp.MonthlyAmount.StringFixed(2))
	s.Nil(resp.PriceAtBooking)

	s.Require().NotNil(resp.NextBillingDate)
	s.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), *resp.NextBillingDate)
}

func (s *BookingServiceSuite) TestCreateBookingOneOff() {
	o := s.holidayOffer()

	resp, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	s.Require().NotNil(resp.PriceAtBooking)
	s.Equal("199.00", resp.PriceAtBooking.StringFixed(2))
	s.Nil(resp.MonthlyAmount)
	s.Nil(resp.NextBillingDate)
}

func (s *BookingServiceSuite) TestIssueInvoice() {
	o := s.weeklyOffer()
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	resp, err := s.service.IssueInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.Require().NotNil(resp.InvoiceNumber)
	s.Require().NotNil(resp.InvoiceDate)

	yy := time.Now().UTC().Year() % 100
	s.Equal(fmt.Sprintf("PW-%02d-0001", yy), *resp.InvoiceNumber)

	// partial first month: 12 of 31 January days at 80
	s.Require().NotNil(resp.FirstMonthAmount)
	s.Equal("30.97", resp.FirstMonthAmount.StringFixed(2))
}

func (s *BookingServiceSuite) TestIssueInvoiceIdempotent() {
	o := s.weeklyOffer()
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	first, err := s.service.IssueInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	second, err := s.service.IssueInvoice(s.GetContext(), created.ID)
	s.NoError(err)

	s.Equal(*first.InvoiceNumber, *second.InvoiceNumber)
	s.Equal(*first.InvoiceDate, *second.InvoiceDate)

	// no value was consumed by the second call
	third, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Alex",
		StartDate:    time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	invoiced, err := s.service.IssueInvoice(s.GetContext(), third.ID)
	s.NoError(err)
	yy := time.Now().UTC().Year() % 100
	s.Equal(fmt.Sprintf("PW-%02d-0002", yy), *invoiced.InvoiceNumber)
}

func (s *BookingServiceSuite) TestIssueInvoiceTypeCodeFallback() {
	recurring := s.createOffer(&offer.Offer{
		Name:     "No Code Weekly",
		Category: types.OfferCategoryWeekly,
		Price:    decimal.RequireFromString("50"),
		Currency: "EUR",
	})
	oneOff := s.createOffer(&offer.Offer{
		Name:     "No Code Camp",
		Category: types.OfferCategoryHoliday,
		Price:    decimal.RequireFromString("150"),
		Currency: "EUR",
	})

	b1, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID: recurring.ID, CustomerName: "Jamie",
		StartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	b2, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID: oneOff.ID, CustomerName: "Alex",
		StartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	r1, err := s.service.IssueInvoice(s.GetContext(), b1.ID)
	s.NoError(err)
	r2, err := s.service.IssueInvoice(s.GetContext(), b2.ID)
	s.NoError(err)

	s.Contains(*r1.InvoiceNumber, "ABO-")
	s.Contains(*r2.InvoiceNumber, "INV-")
}

func (s *BookingServiceSuite) TestCancelBooking() {
	o := s.weeklyOffer()
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	date := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.CancelBooking(s.GetContext(), created.ID, dto.CancelBookingRequest{
		Date:   &date,
		Reason: "moved away",
	})
	s.NoError(err)
	s.Equal(types.BookingStatusCancelled, resp.BookingStatus)
	s.Require().NotNil(resp.CancellationNumber)
	s.Regexp(`^KND-[0-9A-F]{6}$`, *resp.CancellationNumber)
	s.Require().NotNil(resp.CancellationDate)
	s.Equal(date, *resp.CancellationDate)
	s.Equal("moved away", resp.CancelReason)

	// cancelling again keeps the original number
	again, err := s.service.CancelBooking(s.GetContext(), created.ID, dto.CancelBookingRequest{})
	s.NoError(err)
	s.Equal(*resp.CancellationNumber, *again.CancellationNumber)
}

func (s *BookingServiceSuite) TestCancelBookingRejectsNonActive() {
	o := s.weeklyOffer()
	b := &booking.Booking{
		ID:            "book_completed",
		OfferID:       o.ID,
		BookingStatus: types.BookingStatusCompleted,
		StartDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().BookingRepo.Create(s.GetContext(), b))

	_, err := s.service.CancelBooking(s.GetContext(), b.ID, dto.CancelBookingRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *BookingServiceSuite) TestStornoRequiresInvoiceReference() {
	o := s.weeklyOffer()
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	_, err = s.service.StornoBooking(s.GetContext(), created.ID, dto.StornoBookingRequest{})
	s.Error(err)
	s.True(ierr.IsMissingInvoiceReference(err))

	// the failed transition left the booking untouched
	b, err := s.GetStores().BookingRepo.GetByID(s.GetContext(), created.ID)
	s.NoError(err)
	s.Nil(b.StornoNumber)
	s.Nil(b.StornoDate)
	s.Nil(b.StornoAmount)
}

func (s *BookingServiceSuite) TestStornoWithExplicitReference() {
	o := s.weeklyOffer()
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID:      o.ID,
		CustomerName: "Jamie",
		StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)

	resp, err := s.service.StornoBooking(s.GetContext(), created.ID, dto.StornoBookingRequest{
		Reference: "PW-24-0012",
	})
	s.NoError(err)
	s.Require().NotNil(resp.StornoNumber)
	s.Regexp(`^STORNO-[0-9A-F]{6}$`, *resp.StornoNumber)
}

func (s *BookingServiceSuite) TestStornoAmountPriority() {
	o := s.holidayOffer()

	// explicit amount wins
	created, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID: o.ID, CustomerName: "Jamie",
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	_, err = s.service.IssueInvoice(s.GetContext(), created.ID)
	s.NoError(err)

	explicit := decimal.RequireFromString("50")
	resp, err := s.service.StornoBooking(s.GetContext(), created.ID, dto.StornoBookingRequest{
		Amount: &explicit,
	})
	s.NoError(err)
	s.Require().NotNil(resp.StornoAmount)
	s.Equal("50.00", resp.StornoAmount.StringFixed(2))

	// without explicit amount, the frozen booking price wins over the offer
	second, err := s.service.CreateBooking(s.GetContext(), dto.CreateBookingRequest{
		OfferID: o.ID, CustomerName: "Alex",
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	_, err = s.service.IssueInvoice(s.GetContext(), second.ID)
	s.NoError(err)

	resp, err = s.service.StornoBooking(s.GetContext(), second.ID, dto.StornoBookingRequest{})
	s.NoError(err)
	s.Require().NotNil(resp.StornoAmount)
	s.Equal("199.00", resp.StornoAmount.StringFixed(2))
}

func (s *BookingServiceSuite) TestImportBookings() {
	start := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
	monthly := decimal.RequireFromString("80")
	number := "PW-23-0001"

	resp, err := s.service.ImportBookings(s.GetContext(), dto.ImportBookingsRequest{
		Bookings: []booking.LegacyRecord{
			{
				ID:            "book_legacy_1",
				OfferType:     types.LegacyTypeFoerdertraining,
				Status:        "active",
				StartDate:     &start,
				MonthlyAmount: &monthly,
				InvoiceNumber: &number,
			},
			{
				ID:     "book_legacy_2",
				Status: "cancelled",
				Date:   &start,
			},
			// duplicate id is skipped, not fatal
			{
				ID:     "book_legacy_1",
				Status: "active",
			},
			{
				ID:        "book_legacy_3",
				Status:    "active",
				Date:      &start,
				InvoiceNo: sptr("pw/2023/7"),
			},
		},
	})
	s.NoError(err)
	s.Equal(3, resp.Imported)
	s.Regexp(`^IMP_[0-9A-Z_]{1,8}$`, resp.BatchID)

	b, err := s.GetStores().BookingRepo.GetByID(s.GetContext(), "book_legacy_1")
	s.NoError(err)
	s.Equal(types.LegacyTypeFoerdertraining, b.OfferType)
	s.Require().NotNil(b.InvoiceNumber)
	s.Equal("PW-23-0001", *b.InvoiceNumber)

	// legacy number spellings are canonicalized on the way in
	b, err = s.GetStores().BookingRepo.GetByID(s.GetContext(), "book_legacy_3")
	s.NoError(err)
	s.Require().NotNil(b.InvoiceNumber)
	s.Equal("PW-23-0007", *b.InvoiceNumber)
}

func sptr(v string) *string { return &v }

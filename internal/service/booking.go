package service

import (
	"context"
	"time"

	"github.com/coursebill/coursebill/internal/api/dto"
	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/numbering"
	"github.com/coursebill/coursebill/internal/domain/offer"
	"github.com/coursebill/coursebill/internal/domain/proration"
	"github.com/coursebill/coursebill/internal/domain/sequence"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

// fallback type code when an offer carries no code and classification cannot
// derive one
const defaultInvoiceTypeCode = "INV"

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, filter booking.Filter) (*dto.ListBookingsResponse, error)
	ImportBookings(ctx context.Context, req dto.ImportBookingsRequest) (*dto.ImportBookingsResponse, error)

	// Lifecycle transitions
	IssueInvoice(ctx context.Context, bookingID string) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (*dto.BookingResponse, error)
	StornoBooking(ctx context.Context, bookingID string, req dto.StornoBookingRequest) (*dto.BookingResponse, error)
}

type bookingService struct {
	ServiceParams
	allocator SequenceAllocator
}

func NewBookingService(params ServiceParams, allocator SequenceAllocator) BookingService {
	return &bookingService{ServiceParams: params, allocator: allocator}
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OfferRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}

	b := req.ToBooking(ctx)
	b.OfferType = o.Type
	if b.Currency == "" {
		b.Currency = o.Currency
	}

	price := types.RoundTo2(o.Price)
	if offer.IsRecurring(o, "", false) {
		b.MonthlyAmount = &price
	} else {
		b.PriceAtBooking = &price
	}

	if err := s.BookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("booking created",
		"booking_id", b.ID,
		"offer_id", b.OfferID,
		"tenant_id", b.TenantID)

	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter booking.Filter) (*dto.ListBookingsResponse, error) {
	bookings, err := s.BookingRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.NewBookingResponse(b))
	}
	return &dto.ListBookingsResponse{Items: items, Total: len(items)}, nil
}

func (s *bookingService) ImportBookings(ctx context.Context, req dto.ImportBookingsRequest) (*dto.ImportBookingsResponse, error) {
	batchID := types.GenerateShortIDWithPrefix(types.SHORTID_PREFIX_IMPORT)

	imported := 0
	for _, rec := range req.Bookings {
		b := booking.FromLegacy(ctx, rec)
		if err := s.BookingRepo.Create(ctx, b); err != nil {
			s.Logger.Errorw("skipping legacy booking",
				"batch_id", batchID,
				"booking_id", b.ID,
				"error", err)
			continue
		}
		imported++
	}

	s.Logger.Infow("legacy import finished",
		"batch_id", batchID,
		"received", len(req.Bookings),
		"imported", imported)

	return &dto.ImportBookingsResponse{Imported: imported, BatchID: batchID}, nil
}

// IssueInvoice assigns the invoice number and date for the first invoicing of
// an active booking. The assignment is idempotent: a booking that already
// carries an invoice number is returned unchanged.
func (s *bookingService) IssueInvoice(ctx context.Context, bookingID string) (*dto.BookingResponse, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.IsInvoiced() {
		return dto.NewBookingResponse(b), nil
	}

	o, err := lookupOffer(ctx, s.ServiceParams, b.OfferID)
	if err != nil {
		return nil, err
	}

	recurring := offer.IsRecurring(o, b.OfferType, false)
	typeCode := resolveTypeCode(o, recurring)
	now := time.Now().UTC()

	// counter bump and number assignment commit together so a failed update
	// does not burn a value
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		seq, err := s.allocator.Next(ctx, sequence.InvoiceKey(typeCode, now.Year()))
		if err != nil {
			return err
		}

		number := numbering.FormatShort(typeCode, seq, now)
		b.InvoiceNumber = &number
		b.InvoiceDate = &now

		if recurring && b.FirstMonthAmount == nil {
			if first, ok := proration.FirstMonthPrice(b.StartDate, monthlyPriceOf(b, o)); ok {
				b.FirstMonthAmount = &first
			}
		}

		b.UpdatedAt = now
		b.UpdatedBy = types.GetUserID(ctx)
		return s.BookingRepo.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice issued",
		"booking_id", b.ID,
		"invoice_number", *b.InvoiceNumber,
		"type_code", typeCode)

	return dto.NewBookingResponse(b), nil
}

// CancelBooking moves an active booking to cancelled and assigns the opaque
// cancellation number exactly once.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (*dto.BookingResponse, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookingStatus != types.BookingStatusActive && !b.IsCancelled() {
		return nil, ierr.NewError("booking cannot be cancelled").
			WithHintf("only active bookings can be cancelled, booking is %s", b.BookingStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	b.BookingStatus = types.BookingStatusCancelled
	b.CancellationDate = &date
	b.CancelReason = req.Reason

	// a booking already carrying a cancellation number is never re-numbered
	if b.CancellationNumber == nil || *b.CancellationNumber == "" {
		number := numbering.CancellationNumber()
		b.CancellationNumber = &number
	}

	b.UpdatedAt = now
	b.UpdatedBy = types.GetUserID(ctx)
	if err := s.BookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("booking cancelled",
		"booking_id", b.ID,
		"cancellation_number", *b.CancellationNumber,
		"reason", req.Reason)

	return dto.NewBookingResponse(b), nil
}

// StornoBooking records a financial reversal against a previously issued
// invoice. Without a resolvable invoice reference the transition fails and
// the booking is left untouched.
func (s *bookingService) StornoBooking(ctx context.Context, bookingID string, req dto.StornoBookingRequest) (*dto.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.IsInvoiced() && req.Reference == "" {
		return nil, ierr.NewError("storno without invoice reference").
			WithHint("A storno needs an invoice to reverse; issue an invoice first or pass a reference").
			WithReportableDetails(map[string]any{"booking_id": b.ID}).
			Mark(ierr.ErrMissingInvoiceReference)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}
	b.StornoDate = &date

	if b.StornoNumber == nil || *b.StornoNumber == "" {
		number := numbering.StornoNumber()
		b.StornoNumber = &number
	}

	if amount := s.resolveStornoAmount(ctx, b, req.Amount); amount != nil {
		b.StornoAmount = amount
	}

	b.UpdatedAt = now
	b.UpdatedBy = types.GetUserID(ctx)
	if err := s.BookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("storno recorded",
		"booking_id", b.ID,
		"storno_number", *b.StornoNumber,
		"storno_amount", b.StornoAmount)

	return dto.NewBookingResponse(b), nil
}

// resolveStornoAmount applies the priority chain: explicit amount, price at
// booking, offer price. Unresolvable stays unset rather than zero.
func (s *bookingService) resolveStornoAmount(ctx context.Context, b *booking.Booking, explicit *decimal.Decimal) *decimal.Decimal {
	if explicit != nil {
		return types.Round2Ptr(explicit)
	}
	if b.PriceAtBooking != nil {
		return types.Round2Ptr(b.PriceAtBooking)
	}

	o, err := lookupOffer(ctx, s.ServiceParams, b.OfferID)
	if err != nil || o == nil {
		return nil
	}
	price := types.RoundTo2(o.Price)
	return &price
}

func resolveTypeCode(o *offer.Offer, recurring bool) string {
	if o != nil && o.Code != "" {
		return o.Code
	}
	if recurring {
		return "ABO"
	}
	return defaultInvoiceTypeCode
}

// monthlyPriceOf prefers the amount frozen on the booking over the offer's
// current price.
func monthlyPriceOf(b *booking.Booking, o *offer.Offer) *decimal.Decimal {
	if b.MonthlyAmount != nil {
		return b.MonthlyAmount
	}
	if o != nil {
		price := o.Price
		return &price
	}
	return nil
}

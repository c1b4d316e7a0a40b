package dto

import (
	"context"
	"time"

	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/proration"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	OfferID       string    `json:"offer_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	Currency      string    `json:"currency"`
}

func (r *CreateBookingRequest) Validate() error {
	if r.StartDate.IsZero() {
		return ierr.NewError("start date is required").
			WithHint("A booking needs a start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateBookingRequest) ToBooking(ctx context.Context) *booking.Booking {
	return &booking.Booking{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING),
		OfferID:       r.OfferID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		StartDate:     r.StartDate.UTC(),
		BookingStatus: types.BookingStatusActive,
		Currency:      r.Currency,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type CancelBookingRequest struct {
	Date   *time.Time `json:"date"`
	Reason string     `json:"reason"`
}

type StornoBookingRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`

	// Reference is an explicit invoice number to reverse when the booking
	// itself carries none.
	Reference string `json:"reference"`
}

func (r *StornoBookingRequest) Validate() error {
	if r.Amount != nil && r.Amount.IsNegative() {
		return ierr.NewError("storno amount cannot be negative").
			WithHint("Storno amounts are positive; the aggregation applies the sign").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ImportBookingsRequest struct {
	Bookings []booking.LegacyRecord `json:"bookings" binding:"required"`
}

type ImportBookingsResponse struct {
	Imported int `json:"imported"`

	// BatchID ties the response to the import's log lines.
	BatchID string `json:"batch_id"`
}

type BookingResponse struct {
	*booking.Booking

	// NextBillingDate is the start of the first full billing period for
	// recurring bookings, the day the prorated first month hands over to the
	// regular monthly amount.
	NextBillingDate *time.Time `json:"next_billing_date,omitempty"`
}

func NewBookingResponse(b *booking.Booking) *BookingResponse {
	resp := &BookingResponse{Booking: b}
	if b != nil && b.MonthlyAmount != nil && !b.StartDate.IsZero() {
		next := proration.NextPeriodStart(b.StartDate)
		resp.NextBillingDate = &next
	}
	return resp
}

type ListBookingsResponse struct {
	Items []*BookingResponse `json:"items"`
	Total int                `json:"total"`
}

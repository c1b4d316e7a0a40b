package booking

import (
	"time"

	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

// Booking is a customer's commitment to an offer, always scoped to a tenant
// owner. Document numbers and dates are assigned exactly once by the booking
// lifecycle; bookings are never deleted by this core.
type Booking struct {
	ID      string `db:"id" json:"id"`
	OfferID string `db:"offer_id" json:"offer_id"`

	// OfferType mirrors the offer's legacy type at booking time so that
	// classification still works when the offer row is gone.
	OfferType string `db:"offer_type" json:"offer_type"`

	CustomerName  string `db:"customer_name" json:"customer_name"`
	CustomerEmail string `db:"customer_email" json:"customer_email"`

	StartDate     time.Time           `db:"start_date" json:"start_date"`
	BookingStatus types.BookingStatus `db:"booking_status" json:"booking_status"`

	PriceAtBooking   *decimal.Decimal `db:"price_at_booking" json:"price_at_booking,omitempty"`
	MonthlyAmount    *decimal.Decimal `db:"monthly_amount" json:"monthly_amount,omitempty"`
	FirstMonthAmount *decimal.Decimal `db:"first_month_amount" json:"first_month_amount,omitempty"`
	Currency         string           `db:"currency" json:"currency"`

	InvoiceNumber *string    `db:"invoice_number" json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `db:"invoice_date" json:"invoice_date,omitempty"`

	CancellationNumber *string    `db:"cancellation_number" json:"cancellation_number,omitempty"`
	CancellationDate   *time.Time `db:"cancellation_date" json:"cancellation_date,omitempty"`
	CancelReason       string     `db:"cancel_reason" json:"cancel_reason,omitempty"`

	StornoNumber *string          `db:"storno_number" json:"storno_number,omitempty"`
	StornoDate   *time.Time       `db:"storno_date" json:"storno_date,omitempty"`
	StornoAmount *decimal.Decimal `db:"storno_amount" json:"storno_amount,omitempty"`

	types.BaseModel
}

// IsInvoiced reports whether an invoice number has been assigned
func (b *Booking) IsInvoiced() bool {
	return b.InvoiceNumber != nil && *b.InvoiceNumber != ""
}

// IsCancelled reports whether the booking has left the active state
func (b *Booking) IsCancelled() bool {
	return b.BookingStatus == types.BookingStatusCancelled
}

// IsStornoed reports whether a storno has been recorded against the booking
func (b *Booking) IsStornoed() bool {
	return b.StornoNumber != nil && *b.StornoNumber != ""
}

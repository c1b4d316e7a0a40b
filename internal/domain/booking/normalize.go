package booking

import (
	"context"
	"time"

	"github.com/coursebill/coursebill/internal/domain/numbering"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

// LegacyRecord carries the historical field-name unions found in imported
// booking data. Several generations of the upstream system wrote the same
// facts under different names; FromLegacy resolves each union exactly once so
// that everything downstream operates on the canonical Booking shape.
//
// Fallback resolution table (first non-empty wins):
//
//	invoice number:      invoiceNumber -> invoiceNo
//	invoice date:        invoiceDate -> invoicedAt
//	monthly amount:      monthlyAmount -> priceMonthly
//	first month amount:  firstMonthAmount -> firstMonth
//	price at booking:    priceAtBooking -> price
//	start date:          startDate -> date
//	cancellation number: cancellationNumber -> cancellationNo
//	storno number:       stornoNumber -> stornoNo
type LegacyRecord struct {
	ID            string `json:"id"`
	OfferID       string `json:"offerId"`
	OfferType     string `json:"offerType"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
	Currency      string `json:"currency"`

	StartDate *time.Time `json:"startDate"`
	Date      *time.Time `json:"date"`

	PriceAtBooking   *decimal.Decimal `json:"priceAtBooking"`
	Price            *decimal.Decimal `json:"price"`
	MonthlyAmount    *decimal.Decimal `json:"monthlyAmount"`
	PriceMonthly     *decimal.Decimal `json:"priceMonthly"`
	FirstMonthAmount *decimal.Decimal `json:"firstMonthAmount"`
	FirstMonth       *decimal.Decimal `json:"firstMonth"`

	InvoiceNumber *string    `json:"invoiceNumber"`
	InvoiceNo     *string    `json:"invoiceNo"`
	InvoiceDate   *time.Time `json:"invoiceDate"`
	InvoicedAt    *time.Time `json:"invoicedAt"`

	CancellationNumber *string    `json:"cancellationNumber"`
	CancellationNo     *string    `json:"cancellationNo"`
	CancellationDate   *time.Time `json:"cancellationDate"`
	CancelReason       string     `json:"cancelReason"`

	StornoNumber *string          `json:"stornoNumber"`
	StornoNo     *string          `json:"stornoNo"`
	StornoDate   *time.Time       `json:"stornoDate"`
	StornoAmount *decimal.Decimal `json:"stornoAmount"`
}

// FromLegacy applies the fallback resolution table and returns a canonical
// Booking owned by the tenant in ctx. Document numbers additionally pass
// through numbering.Normalize, so legacy spellings like "pw/2023/1" land in
// the store as "PW-23-0001" while opaque KND/STORNO numbers are untouched.
func FromLegacy(ctx context.Context, rec LegacyRecord) *Booking {
	b := &Booking{
		ID:            rec.ID,
		OfferID:       rec.OfferID,
		OfferType:     rec.OfferType,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		Currency:      rec.Currency,
		CancelReason:  rec.CancelReason,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}

	if b.ID == "" {
		b.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING)
	}

	b.BookingStatus = types.BookingStatus(rec.Status)
	if !b.BookingStatus.Validate() {
		b.BookingStatus = types.BookingStatusActive
	}

	if start := firstTime(rec.StartDate, rec.Date); start != nil {
		b.StartDate = *start
	}

	b.PriceAtBooking = types.Round2Ptr(firstDecimal(rec.PriceAtBooking, rec.Price))
	b.MonthlyAmount = types.Round2Ptr(firstDecimal(rec.MonthlyAmount, rec.PriceMonthly))
	b.FirstMonthAmount = types.Round2Ptr(firstDecimal(rec.FirstMonthAmount, rec.FirstMonth))
	b.StornoAmount = types.Round2Ptr(rec.StornoAmount)

	b.InvoiceNumber = canonicalNumber(firstString(rec.InvoiceNumber, rec.InvoiceNo))
	b.InvoiceDate = firstTime(rec.InvoiceDate, rec.InvoicedAt)
	b.CancellationNumber = canonicalNumber(firstString(rec.CancellationNumber, rec.CancellationNo))
	b.CancellationDate = rec.CancellationDate
	b.StornoNumber = canonicalNumber(firstString(rec.StornoNumber, rec.StornoNo))
	b.StornoDate = rec.StornoDate

	return b
}

func canonicalNumber(n *string) *string {
	if n == nil {
		return nil
	}
	canon := numbering.Normalize(*n)
	return &canon
}

func firstString(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return c
		}
	}
	return nil
}

func firstTime(candidates ...*time.Time) *time.Time {
	for _, c := range candidates {
		if c != nil && !c.IsZero() {
			return c
		}
	}
	return nil
}

func firstDecimal(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

package booking

import (
	"time"

	"github.com/coursebill/coursebill/internal/types"
)

// Filter narrows booking scans. Year selects rows that are billing-relevant
// to the calendar year: any document dated in the year, or a subscription
// that was running during it (started before year end and not ended before
// year start). The predicate is deliberately permissive; the revenue
// aggregation decides per row what actually counts.
type Filter struct {
	Year          int
	BookingStatus types.BookingStatus
	OfferID       string
}

// Matches applies the filter in-process. The in-memory store uses it so that
// both repository implementations share one year predicate.
func (f Filter) Matches(b *Booking) bool {
	if f.BookingStatus != "" && b.BookingStatus != f.BookingStatus {
		return false
	}
	if f.OfferID != "" && b.OfferID != f.OfferID {
		return false
	}
	if f.Year == 0 {
		return true
	}

	yearStart := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	inYear := func(t *time.Time) bool {
		return t != nil && !t.Before(yearStart) && t.Before(yearEnd)
	}
	if inYear(b.InvoiceDate) || inYear(b.StornoDate) || inYear(b.CancellationDate) {
		return true
	}

	// running during the year: started before year end and not ended before
	// year start
	if !b.StartDate.IsZero() && b.StartDate.Before(yearEnd) {
		if b.BookingStatus == types.BookingStatusActive {
			return true
		}
		endedAfter := func(t *time.Time) bool {
			return t != nil && !t.Before(yearStart)
		}
		if endedAfter(b.CancellationDate) || endedAfter(b.StornoDate) {
			return true
		}
	}
	return false
}

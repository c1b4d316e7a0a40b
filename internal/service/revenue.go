package service

import (
	"context"
	"time"

	"github.com/coursebill/coursebill/internal/api/dto"
	"github.com/coursebill/coursebill/internal/domain/booking"
	"github.com/coursebill/coursebill/internal/domain/offer"
	"github.com/coursebill/coursebill/internal/domain/proration"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// debug trace sources
const (
	sourceFirstMonth    = "first_month"
	sourceMonthly       = "monthly"
	sourceOneOff        = "one_off"
	sourceStorno        = "storno"
	sourceAccrualCredit = "accrual_credit"
	sourceAccrualDebit  = "accrual_debit"
	sourceSkipped       = "skipped"
)

// RevenueService aggregates a tenant's booking events into a 12-month
// revenue series. The scan is read-only and may run concurrently with
// lifecycle mutations; a snapshot taken mid-write is accepted.
type RevenueService interface {
	GetReport(ctx context.Context, req dto.RevenueReportRequest) (*dto.RevenueReportResponse, error)
}

type revenueService struct {
	ServiceParams
}

func NewRevenueService(params ServiceParams) RevenueService {
	return &revenueService{ServiceParams: params}
}

func (s *revenueService) GetReport(ctx context.Context, req dto.RevenueReportRequest) (*dto.RevenueReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.List(ctx, booking.Filter{Year: req.Year})
	if err != nil {
		return nil, err
	}

	st := &reportState{year: req.Year, debug: req.Debug}

	for _, b := range bookings {
		o, err := lookupOffer(ctx, s.ServiceParams, b.OfferID)
		if err != nil {
			// storage errors propagate unchanged; only row-level defects are
			// skipped
			return nil, err
		}

		switch req.Mode {
		case types.RecognitionModeAccrual:
			s.applyAccrual(st, b, o)
		default:
			s.applyCash(st, b, o)
		}
	}

	s.Logger.Debugw("revenue report computed",
		"year", req.Year,
		"mode", req.Mode,
		"bookings", len(bookings),
		"total", st.total())

	return st.response(req.Mode), nil
}

// applyCash books each document event into the month of its actual date.
// Invoices credit, stornos debit. A plain cancellation moves no money (the
// storno is the financial reversal); its date only qualifies the row for the
// scan.
func (s *revenueService) applyCash(st *reportState, b *booking.Booking, o *offer.Offer) {
	recurring := offer.IsRecurring(o, b.OfferType, false)

	if m, ok := monthInYear(b.InvoiceDate, st.year); ok {
		amount, source := s.cashInvoiceAmount(b, o, recurring)
		if amount == nil {
			st.skip(b.ID, "no resolvable invoice amount")
		} else {
			st.credit(b.ID, source, m, *amount)
		}
	}

	if m, ok := monthInYear(b.StornoDate, st.year); ok {
		amount := firstAmount(b.StornoAmount, b.PriceAtBooking, offerPrice(o))
		if amount == nil {
			st.skip(b.ID, "no resolvable storno amount")
		} else {
			st.debit(b.ID, sourceStorno, m, *amount)
		}
	}
}

// cashInvoiceAmount resolves the invoice credit. Recurring bookings use the
// first-month amount only when the invoice date falls in the start month,
// else the monthly amount; one-off bookings use the price at booking.
func (s *revenueService) cashInvoiceAmount(b *booking.Booking, o *offer.Offer, recurring bool) (*decimal.Decimal, string) {
	if !recurring {
		return firstAmount(b.PriceAtBooking, offerPrice(o)), sourceOneOff
	}

	monthly := firstAmount(b.MonthlyAmount, offerPrice(o))
	if !b.StartDate.IsZero() && sameMonth(*b.InvoiceDate, b.StartDate) {
		if b.FirstMonthAmount != nil {
			return b.FirstMonthAmount, sourceFirstMonth
		}
		if prorated, ok := proration.FirstMonthPrice(b.StartDate, monthly); ok {
			return &prorated, sourceFirstMonth
		}
		return nil, sourceFirstMonth
	}
	return monthly, sourceMonthly
}

// applyAccrual credits every calendar month of the target year the
// subscription is active and debits the stop month's amount once when the
// cancellation/storno event falls inside the year. Only strictly Weekly
// offers accrue; the legacy type fallback is disabled here.
func (s *revenueService) applyAccrual(st *reportState, b *booking.Booking, o *offer.Offer) {
	if !offer.IsRecurring(o, b.OfferType, true) {
		return
	}
	if b.StartDate.IsZero() {
		st.skip(b.ID, "missing start date")
		return
	}

	monthly := firstAmount(b.MonthlyAmount, offerPrice(o))
	if monthly == nil {
		st.skip(b.ID, "no resolvable monthly amount")
		return
	}

	if b.StartDate.Year() > st.year {
		return
	}

	firstIdx := 0
	startsThisYear := b.StartDate.Year() == st.year
	if startsThisYear {
		firstIdx = int(b.StartDate.Month()) - 1
	}

	lastIdx := 11
	debitIdx := -1
	if stop := stopDate(b); stop != nil {
		if stop.Year() < st.year {
			return
		}
		if stop.Year() == st.year {
			lastIdx = int(stop.Month()) - 1
			debitIdx = lastIdx
		}
	}
	if lastIdx < firstIdx {
		return
	}

	monthAmount := func(idx int) decimal.Decimal {
		if startsThisYear && idx == firstIdx {
			if b.FirstMonthAmount != nil {
				return *b.FirstMonthAmount
			}
			if prorated, ok := proration.FirstMonthPrice(b.StartDate, monthly); ok {
				return prorated
			}
		}
		return *monthly
	}

	for idx := firstIdx; idx <= lastIdx; idx++ {
		st.credit(b.ID, sourceAccrualCredit, idx, monthAmount(idx))
	}
	if debitIdx >= 0 {
		st.debit(b.ID, sourceAccrualDebit, debitIdx, monthAmount(debitIdx))
	}
}

// stopDate is the earliest recorded end-of-subscription event
func stopDate(b *booking.Booking) *time.Time {
	switch {
	case b.CancellationDate != nil && b.StornoDate != nil:
		if b.StornoDate.Before(*b.CancellationDate) {
			return b.StornoDate
		}
		return b.CancellationDate
	case b.CancellationDate != nil:
		return b.CancellationDate
	default:
		return b.StornoDate
	}
}

func monthInYear(t *time.Time, year int) (int, bool) {
	if t == nil || t.Year() != year {
		return 0, false
	}
	return int(t.Month()) - 1, true
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func offerPrice(o *offer.Offer) *decimal.Decimal {
	if o == nil {
		return nil
	}
	price := o.Price
	return &price
}

func firstAmount(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, c := range candidates {
		if c != nil {
			return types.Round2Ptr(c)
		}
	}
	return nil
}

// reportState accumulates the monthly series while the scan runs
type reportState struct {
	year     int
	debug    bool
	monthly  [12]decimal.Decimal
	positive [12]int
	negative [12]int
	lines    []dto.RevenueDebugLine
}

func (st *reportState) credit(bookingID, source string, month int, amount decimal.Decimal) {
	st.monthly[month] = st.monthly[month].Add(amount)
	st.positive[month]++
	st.trace(bookingID, source, month, amount, "")
}

func (st *reportState) debit(bookingID, source string, month int, amount decimal.Decimal) {
	st.monthly[month] = st.monthly[month].Sub(amount)
	st.negative[month]++
	st.trace(bookingID, source, month, amount.Neg(), "")
}

func (st *reportState) skip(bookingID, note string) {
	st.trace(bookingID, sourceSkipped, -1, decimal.Zero, note)
}

func (st *reportState) trace(bookingID, source string, month int, amount decimal.Decimal, note string) {
	if !st.debug {
		return
	}
	line := dto.RevenueDebugLine{
		BookingID: bookingID,
		Source:    source,
		Amount:    amount,
		Note:      note,
	}
	if month >= 0 {
		line.Month = month + 1
	}
	st.lines = append(st.lines, line)
}

func (st *reportState) total() decimal.Decimal {
	sum := lo.Reduce(st.monthly[:], func(acc decimal.Decimal, m decimal.Decimal, _ int) decimal.Decimal {
		return acc.Add(m)
	}, decimal.Zero)
	return types.RoundTo2(sum)
}

func (st *reportState) response(mode types.RecognitionMode) *dto.RevenueReportResponse {
	resp := &dto.RevenueReportResponse{
		Year:    st.year,
		Mode:    mode,
		Total:   st.total(),
		Monthly: make([]decimal.Decimal, 12),
		Counts: dto.RevenueCounts{
			Positive: make([]int, 12),
			Negative: make([]int, 12),
		},
	}
	for i := 0; i < 12; i++ {
		resp.Monthly[i] = types.RoundTo2(st.monthly[i])
		resp.Counts.Positive[i] = st.positive[i]
		resp.Counts.Negative[i] = st.negative[i]
	}
	if st.debug {
		resp.Debug = &dto.RevenueDebug{Lines: st.lines}
	}
	return resp
}

package proration

import (
	"time"

	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

// FirstMonthPrice computes the prorated charge for a subscription's partial
// first month. The start day is counted as a remaining day, the day ratio is
// clamped to [0, 1] and the result rounds half-up to 2 decimal places.
//
// ok is false when the start date or price is unusable; callers must leave
// the amount unset rather than defaulting to zero.
func FirstMonthPrice(startDate time.Time, monthlyPrice *decimal.Decimal) (decimal.Decimal, bool) {
	if startDate.IsZero() || monthlyPrice == nil || monthlyPrice.IsNegative() {
		return decimal.Zero, false
	}

	daysInMonth := daysIn(startDate.Year(), startDate.Month())
	daysRemaining := daysInMonth - startDate.Day() + 1

	factor := decimal.NewFromInt(int64(daysRemaining)).
		Div(decimal.NewFromInt(int64(daysInMonth)))
	if factor.LessThan(decimal.Zero) {
		factor = decimal.Zero
	}
	if factor.GreaterThan(decimal.NewFromInt(1)) {
		factor = decimal.NewFromInt(1)
	}

	return types.RoundTo2(monthlyPrice.Mul(factor)), true
}

// NextPeriodStart returns the first calendar day of the month following the
// start date's month, the due date of the first full recurring charge.
func NextPeriodStart(startDate time.Time) time.Time {
	return time.Date(startDate.Year(), startDate.Month()+1, 1, 0, 0, 0, 0, startDate.Location())
}

// daysIn relies on time.Date normalizing day 0 of the next month to the last
// day of this one, which keeps leap years correct.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package types

import "github.com/shopspring/decimal"

// RoundTo2 rounds a monetary amount to 2 decimal places using half-up
// rounding. All monetary fields in this core are non-negative two-decimal
// values, so decimal's round-half-away-from-zero is equivalent to half-up.
func RoundTo2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round2Ptr rounds through a nullable amount, leaving nil untouched
func Round2Ptr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	rounded := RoundTo2(*d)
	return &rounded
}

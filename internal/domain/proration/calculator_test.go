package proration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestFirstMonthPrice(t *testing.T) {
	tests := []struct {
		name      string
		startDate time.Time
		monthly   *decimal.Decimal
		expected  string
		ok        bool
	}{
		{
			name:      "mid january start",
			startDate: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			monthly:   d("100"),
			expected:  "38.71", // 12 of 31 days
			ok:        true,
		},
		{
			name:      "first of month pays full price",
			startDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			monthly:   d("100"),
			expected:  "100.00",
			ok:        true,
		},
		{
			name:      "last day of month pays one day",
			startDate: time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			monthly:   d("100"),
			expected:  "3.23",
			ok:        true,
		},
		{
			name:      "leap february counts 29 days",
			startDate: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			monthly:   d("29"),
			expected:  "1.00",
			ok:        true,
		},
		{
			name:      "non leap february counts 28 days",
			startDate: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			monthly:   d("28"),
			expected:  "1.00",
			ok:        true,
		},
		{
			name:      "rounding is half up",
			startDate: time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
			monthly:   d("80"),
			expected:  "38.71", // 15/31 * 80 = 38.709...
			ok:        true,
		},
		{
			name:      "zero price is a valid zero charge",
			startDate: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			monthly:   d("0"),
			expected:  "0.00",
			ok:        true,
		},
		{
			name:      "zero start date is unusable",
			startDate: time.Time{},
			monthly:   d("100"),
			ok:        false,
		},
		{
			name:      "nil price is unusable",
			startDate: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			monthly:   nil,
			ok:        false,
		},
		{
			name:      "negative price is unusable",
			startDate: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			monthly:   d("-10"),
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstMonthPrice(tt.startDate, tt.monthly)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got.StringFixed(2))
			}
		})
	}
}

func TestNextPeriodStart(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		expected time.Time
	}{
		{
			name:     "mid month",
			start:    time.Date(2025, time.January, 20, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			start:    time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first of month moves to next month",
			start:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextPeriodStart(tt.start))
		})
	}
}

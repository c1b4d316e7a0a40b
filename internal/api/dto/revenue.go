package dto

import (
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

type RevenueReportRequest struct {
	Year  int                   `json:"year"`
	Mode  types.RecognitionMode `json:"mode"`
	Debug bool                  `json:"debug"`
}

func (r *RevenueReportRequest) Validate() error {
	if r.Year < 1970 || r.Year > 9999 {
		return ierr.NewError("invalid report year").
			WithHintf("year %d is out of range", r.Year).
			Mark(ierr.ErrValidation)
	}
	if r.Mode == "" {
		r.Mode = types.RecognitionModeCash
	}
	if !r.Mode.Validate() {
		return ierr.NewError("invalid recognition mode").
			WithHintf("mode must be %q or %q", types.RecognitionModeCash, types.RecognitionModeAccrual).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RevenueReportResponse is the 12-month revenue series for a target year.
// Monthly is indexed by calendar month (0 = January).
type RevenueReportResponse struct {
	Year    int                   `json:"year"`
	Mode    types.RecognitionMode `json:"mode"`
	Total   decimal.Decimal       `json:"total"`
	Monthly []decimal.Decimal     `json:"monthly"`
	Counts  RevenueCounts         `json:"counts"`
	Debug   *RevenueDebug         `json:"debug,omitempty"`
}

type RevenueCounts struct {
	Positive []int `json:"positive"`
	Negative []int `json:"negative"`
}

// RevenueDebug traces which amount, source and month each booking
// contributed, including rows skipped as malformed.
type RevenueDebug struct {
	Lines []RevenueDebugLine `json:"lines"`
}

type RevenueDebugLine struct {
	BookingID string          `json:"booking_id"`
	Source    string          `json:"source"`
	Month     int             `json:"month,omitempty"` // 1-12, 0 when skipped
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
}

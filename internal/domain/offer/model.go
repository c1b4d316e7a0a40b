package offer

import (
	"github.com/coursebill/coursebill/internal/types"
	"github.com/shopspring/decimal"
)

// Offer represents a course offering a customer can book. Offers are owned by
// a tenant and immutable after creation except for administrative edits.
type Offer struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	// Category is the modern classification. Empty on legacy rows, which
	// carry only Type/SubType.
	Category types.OfferCategory `db:"category" json:"category"`
	Type     string              `db:"type" json:"type"`
	SubType  string              `db:"sub_type" json:"sub_type"`

	Price    decimal.Decimal `db:"price" json:"price"`
	Currency string          `db:"currency" json:"currency"`

	// Code is the short type code used in structured document numbers,
	// e.g. "PW" in PW-25-0029.
	Code     string `db:"code" json:"code"`
	Location string `db:"location" json:"location"`

	types.BaseModel
}

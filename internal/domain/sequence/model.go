package sequence

import (
	"fmt"
	"time"
)

// Counter is one monotonically increasing sequence row. Keys are arbitrary
// strings; document numbering uses one row per (documentType, typeCode, year)
// such as "invoice:PW:2025". Values are never reused, even when the booking
// that consumed one is later deleted.
type Counter struct {
	Key       string    `db:"key" json:"key"`
	Seq       int64     `db:"seq" json:"seq"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceKey builds the counter key for invoice numbers of a type code in a
// calendar year.
func InvoiceKey(typeCode string, year int) string {
	return fmt.Sprintf("invoice:%s:%d", typeCode, year)
}

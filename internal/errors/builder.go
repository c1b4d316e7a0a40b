package errors

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder accumulates hints and reportable details onto an error chain.
// It is not itself an error; Mark closes the chain with a package sentinel
// and returns the marked error.
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a fresh message, e.g. "booking not found".
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a chain from an error surfacing out of storage or a
// library, preserving its message and stack.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint attaches the message shown to API callers. Hints never carry raw
// driver errors; those stay inside the chain.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches structured context (booking ids, counter
// keys) that the error handler renders alongside the hint. The map is
// marshaled once and carried as a safe detail.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, "__json__:%s", errors.Safe(string(marshaled)))
	return b
}

// Mark stamps the chain with a sentinel such as ErrNotFound or
// ErrSequenceConflict so callers can branch with the Is* helpers. Must be the
// last call in the chain.
func (b *ErrorBuilder) Mark(reference error) error {
	b.err = errors.Mark(b.err, reference)
	return b.err
}

package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// ErrSequenceConflict is a transient storage conflict during an atomic
	// counter increment. The failed attempt never returned a value, so the
	// caller retries the same allocation without skipping or duplicating one.
	ErrSequenceConflict = new(ErrCodeSequenceConflict, "sequence allocation conflict")

	// ErrMissingInvoiceReference is returned when a storno is requested for a
	// booking that has no invoice number and no explicit reference was given.
	ErrMissingInvoiceReference = new(ErrCodeMissingInvoiceReference, "no invoice reference to reverse")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:                http.StatusNotFound,
		ErrAlreadyExists:           http.StatusConflict,
		ErrValidation:              http.StatusBadRequest,
		ErrInvalidOperation:        http.StatusBadRequest,
		ErrPermissionDenied:        http.StatusForbidden,
		ErrDatabase:                http.StatusInternalServerError,
		ErrSystem:                  http.StatusInternalServerError,
		ErrSequenceConflict:        http.StatusConflict,
		ErrMissingInvoiceReference: http.StatusBadRequest,
	}
)

const (
	ErrCodeSystemError             = "system_error"
	ErrCodeNotFound                = "not_found"
	ErrCodeAlreadyExists           = "already_exists"
	ErrCodeValidation              = "validation_error"
	ErrCodeInvalidOperation        = "invalid_operation"
	ErrCodePermissionDenied        = "permission_denied"
	ErrCodeDatabase                = "database_error"
	ErrCodeSequenceConflict        = "sequence_conflict"
	ErrCodeMissingInvoiceReference = "missing_invoice_reference"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsSequenceConflict checks if an error is a transient sequence conflict
func IsSequenceConflict(err error) bool {
	return errors.Is(err, ErrSequenceConflict)
}

// IsMissingInvoiceReference checks if an error is a missing invoice reference error
func IsMissingInvoiceReference(err error) bool {
	return errors.Is(err, ErrMissingInvoiceReference)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

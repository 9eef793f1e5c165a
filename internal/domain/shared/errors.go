package shared

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches domain errors by code, so errors.Is(err, ErrNotFound)
// holds for any error carrying the NOT_FOUND code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewStorageError wraps a persistence-layer failure. Storage faults are
// the one category callers may treat as fatal to the call, so the cause
// stays on the chain for errors.Is/As inspection.
func NewStorageError(op string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeStorageFailure,
		Message: fmt.Sprintf("storage failure during %s", op),
		cause:   cause,
	}
}

// Error codes shared across the domain
const (
	CodeNotFound       = "NOT_FOUND"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeStorageFailure = "STORAGE_FAILURE"
)

// Common domain errors
var (
	ErrNotFound       = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists  = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput   = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrStorageFailure = NewDomainError(CodeStorageFailure, "Storage operation failed")
)

// IsValidation reports whether err is a validation failure. Validation
// codes all carry the INVALID_ prefix (INVALID_ID, INVALID_QUANTITY, ...).
func IsValidation(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && strings.HasPrefix(de.Code, "INVALID_")
}

// IsNotFound reports whether err refers to a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a duplicate-identifier conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsStorageFault reports whether err originated in the persistence layer
func IsStorageFault(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

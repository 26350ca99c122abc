package domain

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrThirdPartyNotFound  = errors.New("third party not found")
	ErrMovementNotFound    = errors.New("movement not found")
	ErrTransferNotFound    = errors.New("transfer not found")
	ErrDuplicateLogin      = errors.New("login already exists")
	ErrHasDependents       = errors.New("resource still has dependent rows")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidToken        = errors.New("invalid or expired token")
)

// ValidationError collects every field-level problem found for a request so
// callers can report all violations at once.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

// NewValidationError wraps a list of field messages, or returns nil when the
// list is empty so call sites can return it directly.
func NewValidationError(details []string) error {
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{Details: details}
}

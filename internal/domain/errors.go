package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNoActiveSession is returned by stop/cancel when the user has no open entry.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidRange is returned when an edit would leave end_time <= start_time.
	ErrInvalidRange = errors.New("end_time must be after start_time")

	// ErrEntryRunning is returned when an operation that requires a closed
	// entry (time edit, adjust, delete) targets an open one.
	ErrEntryRunning = errors.New("entry is still running")

	// ErrStoreUnavailable marks infrastructure failures that the caller may retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ActiveSessionConflictError is returned by start when the user already has
// an open entry. Existing is that entry.
type ActiveSessionConflictError struct {
	Existing *TimeEntry
}

func (e *ActiveSessionConflictError) Error() string {
	if e.Existing == nil {
		return "active session already exists"
	}
	return fmt.Sprintf("active session %s already exists", e.Existing.ID)
}

func (e *ActiveSessionConflictError) Unwrap() error { return ErrConflict }

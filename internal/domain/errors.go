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
	ErrConflict      = errors.New("conflict")

	// ErrOutOfRange is returned when the queue position is past the last item.
	ErrOutOfRange = errors.New("out of range")
	// ErrInputDisabled is returned for gameplay actions while an exercise
	// is completed and waiting for the advance callback.
	ErrInputDisabled = errors.New("input disabled")
	// ErrGeneration marks every GenerationError.
	ErrGeneration = errors.New("exercise generation failed")
	// ErrEmptyResult is the cause of a GenerationError when the source returned nothing.
	ErrEmptyResult = errors.New("empty result")
	// ErrStaleResult is returned when a replenishment resolves for a
	// configuration that is no longer selected.
	ErrStaleResult = fmt.Errorf("stale result: %w", ErrConflict)
)

// GenerationError reports that exercises could not be obtained after the
// caller's retry policy. It is always recoverable.
type GenerationError struct {
	Attempts int
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("exercise generation failed after %d attempt(s): %v", e.Attempts, e.Cause)
}

// Is makes errors.Is(err, ErrGeneration) true for any GenerationError.
func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

func (e *GenerationError) Unwrap() error { return e.Cause }

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

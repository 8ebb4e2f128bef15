package common

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrDuplicateIdentity = errors.New("user already exists")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrNotFound          = errors.New("not found")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// ValidationError carries human-readable reasons for rejected input.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Details []string
}

func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

package contact

import (
	"errors"
	"fmt"
)

// Validation failures
var (
	ErrRequired      = errors.New("name, email, and phone are required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrPhoneTooShort = errors.New("phone must be at least 10 digits")
)

// ValidationError describes why one input field was rejected
type ValidationError struct {
	Field  Field
	Reason string // user-facing text for the field
	Err    error  // one of ErrRequired, ErrInvalidEmail, ErrPhoneTooShort
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

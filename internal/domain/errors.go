package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSubscriberEmail is matched by every email validation failure.
	ErrInvalidSubscriberEmail = errors.New("invalid subscriber email")
	// ErrInvalidSubscriberName is matched by every name validation failure.
	ErrInvalidSubscriberName = errors.New("invalid subscriber name")
)

// ValidationError reports a raw input that failed validation. The message
// always quotes the offending input.
type ValidationError struct {
	Field string
	Value string
	kind  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is not a valid subscriber %s.", e.Value, e.Field)
}

func (e *ValidationError) Unwrap() error { return e.kind }

package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these,
// so callers can branch with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Error is a domain failure with a human-readable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument reports a malformed call (e.g. a nil subscriber).
func InvalidArgument(format string, args ...any) error {
	return newError(ErrInvalidArgument, format, args...)
}

// Validation reports bad user input.
func Validation(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

// NotFound reports a missing customer, product or supplier.
func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// InsufficientStock reports a failed stock check.
func InsufficientStock(format string, args ...any) error {
	return newError(ErrInsufficientStock, format, args...)
}

// ABOUTME: Custom error types for the feed ingestion core
// ABOUTME: Every public operation converts these to a soft "not found" result

package errors

import (
	"errors"
	"fmt"
)

// NetworkError represents a connection or timeout failure while reaching
// a remote service.
type NetworkError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

// Unwrap exposes the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed, empty or incomplete remote document.
type ParseError struct {
	Source  string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error from %s: %s", e.Source, e.Message)
}

// ValidationError represents a malformed identifier or an unexpected API
// response shape.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

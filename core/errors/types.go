// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the NotFound and InvalidInput domain errors and the unclassified backend status error

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a requested product that does not exist
type NotFoundError struct {
	Message string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidInputError represents a malformed or out-of-range request
type InvalidInputError struct {
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return e.Message
}

// HTTPStatusError represents an unclassified non-2xx response from a backend
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError
func IsHTTPStatus(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// AsHTTPStatus returns the HTTPStatusError in err's chain, if any
func AsHTTPStatus(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

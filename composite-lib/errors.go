// ABOUTME: Error types and handling for the product composite library
// ABOUTME: Wraps core failures in a structured error with a stable type

package composite

import (
	"errors"
	"fmt"

	coreerrors "product-composite-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates the product does not exist
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeInvalidInput indicates the product id was rejected
	ErrorTypeInvalidInput ErrorType = "invalid_input"

	// ErrorTypeUpstream indicates any other product service failure
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrNoHTTPClient is returned when the client is built without an HTTP client
var ErrNoHTTPClient = NewError(ErrorTypeConfiguration, "no HTTP client configured")

// fromCoreError classifies a failure of the composite service
func fromCoreError(err error, productID int) error {
	if err == nil {
		return nil
	}

	var e *Error
	switch {
	case coreerrors.IsNotFound(err):
		e = NewError(ErrorTypeNotFound, err.Error())
	case coreerrors.IsInvalidInput(err):
		e = NewError(ErrorTypeInvalidInput, err.Error())
	default:
		e = NewError(ErrorTypeUpstream, "product service call failed")
		if statusErr, ok := coreerrors.AsHTTPStatus(err); ok {
			e.WithContext("status", statusErr.StatusCode)
		}
	}

	return e.WithCause(err).WithContext("product_id", productID)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsInvalidInputError checks if an error is an invalid input error
func IsInvalidInputError(err error) bool {
	return isType(err, ErrorTypeInvalidInput)
}

// IsUpstreamError checks if an error is an upstream error
func IsUpstreamError(err error) bool {
	return isType(err, ErrorTypeUpstream)
}

// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to the structured error body returned to clients

package handlers

import (
	"net/http"
	"time"

	"product-composite-api/core/errors"
	"product-composite-api/core/interfaces"
)

// internalErrorMessage hides unclassified failures from clients
const internalErrorMessage = "Internal server error"

// HTTPErrorInfo is the error body returned by the composite endpoints.
// It implements huma.StatusError so huma writes it as-is with its status.
type HTTPErrorInfo struct {
	Timestamp time.Time `json:"timestamp" doc:"When the error was produced"`
	Path      string    `json:"path" doc:"Request path"`
	Status    int       `json:"status" doc:"HTTP status code"`
	Reason    string    `json:"error" doc:"HTTP status text"`
	Message   string    `json:"message" doc:"Error message"`
}

func (e *HTTPErrorInfo) Error() string {
	return e.Message
}

func (e *HTTPErrorInfo) GetStatus() int {
	return e.Status
}

func newHTTPErrorInfo(status int, path, message string, now time.Time) *HTTPErrorInfo {
	return &HTTPErrorInfo{
		Timestamp: now,
		Path:      path,
		Status:    status,
		Reason:    http.StatusText(status),
		Message:   message,
	}
}

// toHTTPError converts domain errors to an HTTPErrorInfo for path
func toHTTPError(err error, path string, now time.Time, logger interfaces.Logger) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return newHTTPErrorInfo(http.StatusNotFound, path, err.Error(), now)
	case errors.IsInvalidInput(err):
		return newHTTPErrorInfo(http.StatusUnprocessableEntity, path, err.Error(), now)
	}

	fields := map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	}
	if statusErr, ok := errors.AsHTTPStatus(err); ok {
		fields["backend_status"] = statusErr.StatusCode
		fields["backend_url"] = statusErr.URL
	}
	logger.Error("Unhandled error while serving request", fields)

	return newHTTPErrorInfo(http.StatusInternalServerError, path, internalErrorMessage, now)
}

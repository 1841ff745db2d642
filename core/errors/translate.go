// ABOUTME: Translates failed backend exchanges into domain errors
// ABOUTME: Extracts the human readable message from structured error bodies

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorBody is the structured error payload returned by the backends.
// Only the message is of interest, other fields are ignored.
type errorBody struct {
	Message *string `json:"message"`
}

// MessageFromBody returns the message of a structured error body.
// When the body is empty, malformed or has no string message, a generic
// message built from the status code is returned instead.
func MessageFromBody(statusCode int, body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != nil {
		return *payload.Message
	}

	return fallbackMessage(statusCode)
}

// FromHTTPStatus maps a non-2xx backend response to an error.
// 404 becomes NotFoundError, 422 becomes InvalidInputError and every other
// status is reported unchanged as an HTTPStatusError.
func FromHTTPStatus(statusCode int, url string, body []byte) error {
	switch statusCode {
	case http.StatusNotFound:
		return &NotFoundError{Message: MessageFromBody(statusCode, body)}
	case http.StatusUnprocessableEntity:
		return &InvalidInputError{Message: MessageFromBody(statusCode, body)}
	default:
		return &HTTPStatusError{
			StatusCode: statusCode,
			URL:        url,
			Body:       string(body),
		}
	}
}

func fallbackMessage(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return fmt.Sprintf("%d", statusCode)
	}
	return fmt.Sprintf("%d %s", statusCode, text)
}

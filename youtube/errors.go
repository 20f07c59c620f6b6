package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMissingField indicates a response without a field the schema requires
var ErrMissingField = errors.New("missing required field")

// Error types returned by the search pipeline
type (
	// SerializationError indicates the request could not be encoded into a query string
	SerializationError struct {
		Err error
	}

	// ConnectionError indicates the HTTP call failed or the body could not be read
	ConnectionError struct {
		Err error
	}

	// DeserializationError indicates the body did not match the response schema.
	// Body holds the raw (UTF-8 sanitised) response text.
	DeserializationError struct {
		Body string
		Err  error
	}
)

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to the api: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize: %v: %s", e.Err, e.Body)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Reasons the API reports when a project ran out of quota
var quotaReasons = map[string]bool{
	"quotaExceeded":      true,
	"dailyLimitExceeded": true,
	"rateLimitExceeded":  true,
}

// APIError represents a non-2xx answer from the YouTube API
type APIError struct {
	StatusCode int
	Message    string
	Reason     string
	Body       string
}

// newAPIError extracts the API error envelope from body.
// When the body carries no envelope the HTTP status text is used as message.
func newAPIError(statusCode int, body string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	if gjson.Valid(body) {
		result := gjson.Parse(body)
		apiErr.Message = result.Get("error.message").String()
		apiErr.Reason = result.Get("error.errors.0.reason").String()
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube API error: status %d: %s (%s)", e.StatusCode, e.Message, e.Reason)
	}
	return fmt.Sprintf("youtube API error: status %d: %s", e.StatusCode, e.Message)
}

// IsBadRequest checks if the API rejected the request parameters
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsQuotaExceeded checks if the project ran out of quota
func (e *APIError) IsQuotaExceeded() bool {
	return e.StatusCode == http.StatusForbidden && quotaReasons[e.Reason]
}

// IsUnauthorized checks if the error indicates an invalid or missing key
func (e *APIError) IsUnauthorized() bool {
	if e.IsQuotaExceeded() {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden ||
		strings.EqualFold(e.Reason, "keyInvalid")
}

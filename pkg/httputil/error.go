package httputil

import (
	"net/http"
)

// HTTPError represents an error that can be sent to clients
type HTTPError struct {
	Status  int    // HTTP status code
	Message string // User-facing message
	Cause   error  // Optional wrapped internal error (for logging)
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is and errors.As to work
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Error with 400 status code
func BadRequest(msg string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg}
}

// Error with 404 status code
func NotFound(msg string) error {
	return &HTTPError{Status: http.StatusNotFound, Message: msg}
}

// Error with 500 status code
func Internal(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong",
		Cause:   err,
	}
}

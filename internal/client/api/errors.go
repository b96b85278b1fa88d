package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable indicates the server could not be reached or timed out.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the request was rejected for missing or
	// unprocessable credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError carries the backend's error message from an {"error": "..."}
// response body. Error() returns the message verbatim so it can be surfaced
// to the user unchanged.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusUnprocessableEntity {
		return ErrUnauthorized
	}
	return nil
}

// StatusError reports a non-success HTTP status for responses that carried no
// decodable error message (e.g. binary asset endpoints).
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusUnprocessableEntity {
		return ErrUnauthorized
	}
	return nil
}

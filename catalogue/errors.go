package catalogue

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingBaseURL indicates the client was created without a base URL
	ErrMissingBaseURL = errors.New("catalogue base URL is required")
	// ErrMissingToken indicates the client was created without a token source
	ErrMissingToken = errors.New("catalogue token source is required")
)

// UnexpectedStatusError is returned when the server responds with a
// status code outside the recognized set and the client is configured to
// raise on unexpected statuses (the default).
type UnexpectedStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("catalogue API returned unexpected status %d", e.StatusCode)
}

// DecodeError is returned when a recognized status carries a body that
// does not match its documented shape. For a 200 this is a contract
// violation the caller cannot route around.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("catalogue API: failed to decode status %d body: %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

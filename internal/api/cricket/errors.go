package cricket

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested entity does not exist on the
// server. Match with errors.Is.
var ErrNotFound = errors.New("not found")

// NetError wraps a transport-level failure (connection refused, timeout).
// The request may or may not have reached the server.
type NetError struct {
	Err error
}

func (e *NetError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetError) Unwrap() error { return e.Err }

// APIError is a request the server understood and rejected, e.g. a fixture
// with the same team on both sides. Message is the server's explanation.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

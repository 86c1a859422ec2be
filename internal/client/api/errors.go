package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no response was received (connection refused,
	// DNS failure, timeout). The request may be retried by the caller.
	ErrUnavailable = errors.New("server unavailable")

	// ErrReauthRequired means the session is invalid and cannot be
	// recovered automatically. The user must log in again; until then
	// every call is rejected without network I/O.
	ErrReauthRequired = errors.New("re-authentication required")
)

// APIError is a non-2xx response that is not owned by the refresh path.
// Message and Errors are taken from the response envelope when present.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

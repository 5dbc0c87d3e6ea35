package programguide

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for program guide requests.
var (
	ErrBadRequest   = errors.New("programguide: bad request")
	ErrUnauthorized = errors.New("programguide: unauthorized")
	ErrNotFound     = errors.New("programguide: not found")
	ErrRateLimited  = errors.New("programguide: rate limited by server")
	ErrServer       = errors.New("programguide: server error")

	// ErrMissingIdentifier is returned before any request when a program
	// or broadcast event identifier is empty.
	ErrMissingIdentifier = errors.New("programguide: missing identifier")

	// ErrInvalidDate is returned by ParseDate.
	ErrInvalidDate = errors.New("programguide: invalid date")
)

// StatusError is returned by HTTPGetter for a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string // key redacted
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("programguide: GET %s: %s", e.URL, e.Status)
}

// Unwrap maps the status code onto a sentinel so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServer
	}
	return nil
}

package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("login service unavailable")
	ErrRejected    = errors.New("login rejected")
)

// StatusError carries the HTTP status of a non-2xx login response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrRejected
}

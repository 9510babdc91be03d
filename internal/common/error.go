package common

import "errors"

var (
	// Session record errors.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// Form errors.
	ErrMissingCredentials = errors.New("username and password are required")
)

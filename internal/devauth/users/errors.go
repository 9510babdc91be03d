package users

import "errors"

var (
	ErrNotFound         = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrUnauthorized     = errors.New("invalid username or password")
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrPasswordTooLong  = errors.New("password longer than 72 bytes")
)

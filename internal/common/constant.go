// Package common contains shared constants, sentinel errors and small helpers
// used across prodgate components.
package common

// AuthenticatedDateKey is the session store key holding the instant of the
// last successful login.
const AuthenticatedDateKey = "authenticated_date"

// TimestampLayout is the ISO-8601 form the session record is written in:
// UTC with millisecond precision, e.g. 2026-10-17T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

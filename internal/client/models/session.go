// Package models defines client-side data models used by the prodgate CLI.
package models

import "time"

// SessionStatus is the gate's view of the local session at one instant.
type SessionStatus struct {
	// Authenticated is true while a login record exists and is younger than
	// the session duration.
	Authenticated bool

	// AuthenticatedAt is the instant of the successful login. Zero when
	// Authenticated is false.
	AuthenticatedAt time.Time

	// ExpiresAt is AuthenticatedAt plus the session duration. Zero when
	// Authenticated is false.
	ExpiresAt time.Time
}

// Remaining returns how long the session stays valid after now, or 0.
func (s SessionStatus) Remaining(now time.Time) time.Duration {
	if !s.Authenticated {
		return 0
	}
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Package metadata is the client's persistent key/value store. The session
// gate keeps its single record (the authenticated_date timestamp) here; the
// data survives restarts and is removed only by an explicit Delete or Clear.
package metadata

import (
	"context"
)

// Repository is a durable key/value store.
//
// Get returns (nil, nil) for an absent key. Set overwrites. Delete is
// idempotent. Clear removes every key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

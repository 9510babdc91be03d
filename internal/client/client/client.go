package client

import (
	"context"
)

// Client is the transport to the remote login service.
//
// Login returns nil when the service accepted the credentials. A rejection
// is reported as an error matching ErrRejected (see StatusError); a request
// that never completed matches ErrUnavailable.
type Client interface {
	Login(ctx context.Context, username string, password []byte) error
	Close() error
}

// Package client contains the client-side plumbing under the session gate.
//
// # Overview
//
// The package provides:
//  1. The transport contract to the remote login service (see Client).
//  2. HTTPClient, which posts username, password and api=false as an
//     application/x-www-form-urlencoded body and treats any 2xx status as
//     acceptance. The response body is never read.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     file with embedded goose migrations, holding the session store.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched by errors.Is:
// ErrRejected (any non-2xx status, wrapped in *StatusError) and
// ErrUnavailable (the request never completed).
package client

// Package cli provides the interactive prodgate terminal client.
//
// It wires configuration, the local session database, the login transport
// and the auth gate, then runs a REPL that switches between two views:
//
//   - login: the credentials form, shown while no live session exists
//   - dashboard: the production overview, shown while the gate reports a
//     live session
//
// The view is re-evaluated before every prompt, so a session that expires
// while the client is idle drops back to the login view on the next command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

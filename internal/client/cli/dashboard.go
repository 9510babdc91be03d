package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const msgNotLoggedIn = "Not logged in. Type 'login' to sign in."

var errNotLoggedIn = errors.New("not logged in")

const displayLayout = "2006-01-02 15:04:05 MST"

// Dashboard renders the authenticated view. It re-checks the gate, so an
// expired session is reported instead of rendered.
func (a *App) Dashboard(ctx context.Context) error {
	st := a.authService.Status(ctx)
	if !st.Authenticated {
		printlnFn(msgNotLoggedIn)
		return errNotLoggedIn
	}

	printlnFn("== Dashboard ==")
	printlnFn(fmt.Sprintf("Signed in at %s", st.AuthenticatedAt.Local().Format(displayLayout)))
	printlnFn(fmt.Sprintf("Session ends in %s", st.Remaining(now()).Round(time.Second)))
	printlnFn("Commands: status, logout, reset, exit")
	return nil
}

// Status prints when the session started and when it expires.
func (a *App) Status(ctx context.Context) error {
	st := a.authService.Status(ctx)
	if !st.Authenticated {
		printlnFn("Status: logged out")
		return nil
	}

	printlnFn(fmt.Sprintf("Status: logged in since %s, expires at %s (%s left)",
		st.AuthenticatedAt.Local().Format(displayLayout),
		st.ExpiresAt.Local().Format(displayLayout),
		st.Remaining(now()).Round(time.Second)))
	return nil
}

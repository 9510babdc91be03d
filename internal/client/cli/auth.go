package cli

import (
	"context"
	"errors"
	"os"

	"github.com/santosysantos/prodgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgInvalidCredentials = "Invalid credentials. Please try again."
	msgMissingCredentials = "Username and password are required."
	msgAlreadyLoggedIn    = "Already logged in."
	msgLoggedOut          = "Logged out."
	msgInputFailed        = "Could not read credentials from the terminal."
	msgReset              = "Local data cleared."
)

var errLoginFailed = errors.New("login failed")

// Login renders the credentials form and submits it to the gate.
//
// Both fields are required; an empty one is reported without contacting the
// gate. Any rejection is shown as the same generic message, whatever the
// cause. The password is wiped before returning. On success the dashboard
// is rendered.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn(ctx) {
		printlnFn(msgAlreadyLoggedIn)
		return a.Dashboard(ctx)
	}

	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return a.inputFailed(ctx, "username", err)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return a.inputFailed(ctx, "password", err)
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		printlnFn(msgMissingCredentials)
		return common.ErrMissingCredentials
	}

	if !a.authService.Login(ctx, userName, password) {
		printlnFn(msgInvalidCredentials)
		return errLoginFailed
	}

	return a.Dashboard(ctx)
}

func (a *App) inputFailed(ctx context.Context, field string, err error) error {
	a.logger.Error(ctx, "reading credentials failed", "field", field, "error", err)
	printlnFn(msgInputFailed)
	return err
}

// Logout removes the local session record. Nothing is sent to the server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn(msgLoggedOut)
	return nil
}

// Reset wipes every record in the local database, the session included.
func (a *App) Reset(ctx context.Context) error {
	if err := a.authService.Reset(ctx); err != nil {
		a.logger.Error(ctx, "reset failed", "error", err)
		return err
	}
	printlnFn(msgReset)
	return nil
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/santosysantos/prodgate/internal/client/models"
	"github.com/santosysantos/prodgate/internal/logging"
)

var loginInstant = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

type fakeAuth struct {
	mu sync.Mutex

	status models.SessionStatus

	// Login
	loginOK    bool
	loginCalls int
	loginUser  string
	loginPass  []byte

	// Logout
	logoutErr   error
	logoutCalls int

	// Reset
	resetErr   error
	resetCalls int

	// Close
	closeErr error
	closed   bool
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginOK {
		f.status = models.SessionStatus{
			Authenticated:   true,
			AuthenticatedAt: loginInstant,
			ExpiresAt:       loginInstant.Add(time.Hour),
		}
	}
	return f.loginOK
}

func (f *fakeAuth) IsLoggedIn(ctx context.Context) bool { return f.Status(ctx).Authenticated }

func (f *fakeAuth) Status(context.Context) models.SessionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.status = models.SessionStatus{}
	return nil
}

func (f *fakeAuth) Reset(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetCalls++
	if f.resetErr != nil {
		return f.resetErr
	}
	f.status = models.SessionStatus{}
	return nil
}

func (f *fakeAuth) Close(context.Context) error {
	f.closed = true
	return f.closeErr
}

func loggedInAuth() *fakeAuth {
	return &fakeAuth{status: models.SessionStatus{
		Authenticated:   true,
		AuthenticatedAt: loginInstant,
		ExpiresAt:       loginInstant.Add(time.Hour),
	}}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// bufferLogger records log output in buf.
func bufferLogger(buf *bytes.Buffer) logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(buf, nil)))
}

func newTestApp(f *fakeAuth, input string) *App {
	return &App{
		authService: f,
		logger:      discardLogger(),
		reader:      bufio.NewReader(strings.NewReader(input)),
	}
}

// captureOutput swaps printlnFn for a recorder and returns the printed lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		lines = append(lines, s)
		return len(s), nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

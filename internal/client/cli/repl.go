package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current view (from viewFn), which is recomputed
// before every command:
//
//	login view:
//	  - help           show available commands
//	  - login          enter credentials
//	  - status         show session state
//	  - reset          wipe local data
//	  - exit | quit    leave the program
//
//	dashboard view:
//	  - help           show available commands
//	  - dashboard      show the dashboard
//	  - status         show session state and expiry
//	  - logout         end the session
//	  - reset          wipe local data
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers print or
// log their own failures.
func runREPL(ctx context.Context, a execIface, viewFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("prodgate (%s)> ", viewFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard, status, logout, reset, exit")
			} else {
				printlnFn("Available commands: login, status, reset, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "status":
			_ = a.Status(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

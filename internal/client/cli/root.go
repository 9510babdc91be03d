package cli

import (
	"context"
)

// Root greets the user, renders the initial view and runs the REPL until
// the user exits or stdin is closed.
func (a *App) Root(ctx context.Context) {
	printlnFn("Sistema de Gestión de Producción (type 'help' for commands)")

	if a.isLoggedIn(ctx) {
		_ = a.Dashboard(ctx)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, func() string { return string(a.view(ctx)) }, a.reader)
}

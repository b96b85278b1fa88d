package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if user := a.auth.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return ""
}

// Root runs the REPL against stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to MeetingMind CLI (type 'help' for commands)")

	// a persisted token from a previous run keeps the user signed in, but
	// the identity has to be re-fetched
	if a.isLoggedIn() {
		if _, err := a.auth.Me(ctx); err != nil {
			a.log.Warn(ctx, "could not restore identity", "err", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Package credentials manages the single process-wide bearer token used to
// authenticate against the backend. The token is persisted in a local SQLite
// database so it survives process restarts and is cleared on logout or when
// the server rejects it.
package credentials

import "context"

// Store holds the bearer token. At most one live value exists process-wide;
// writes happen only on login, register, logout, or the gateway's auto-logout.
// Readers must always observe the current value, never a snapshot: logout can
// occur asynchronously mid-lifecycle.
type Store interface {
	// Token returns the current bearer token, or an empty string when the
	// client is unauthenticated.
	Token(ctx context.Context) (string, error)

	// SetToken replaces the stored token.
	SetToken(ctx context.Context, token string) error

	// Clear removes the stored token.
	Clear(ctx context.Context) error

	// OnChange registers a callback invoked after every successful SetToken
	// or Clear, with the new token value ("" after Clear).
	OnChange(fn func(token string))
}

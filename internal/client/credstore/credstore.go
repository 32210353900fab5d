// Package credstore persists the bearer credential across process restarts.
// Exactly one durable value exists: the access token under a fixed key.
// It is written by the session store (login/logout) and by the transport's
// credential-expiry handler, and read once at startup.
package credstore

import "context"

// Repository is durable storage for the single client credential.
type Repository interface {
	// Token returns the persisted access token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Save stores the access token, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

package interfaces

import "context"

// ISessionStore abstracts the stub sign-in session storage. Sessions map a
// bearer token to an owner id and live only as long as the process.

type ISessionStore interface {
	Put(ctx context.Context, token, ownerID string) error
	// Get returns the owner id for a token, or "" when the token is unknown.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

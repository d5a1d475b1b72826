// Package session persists the login session (token and serialized user
// profile) between runs. It is a two-entry key-value store; absence of the
// entries means the user is not authenticated.
package session

import "context"

// Keys under which the session entries are stored.
const (
	KeyToken = "token"
	KeyUser  = "userData"
)

type Repository interface {
	// Get returns the stored value for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every stored entry.
	Clear(ctx context.Context) error
}

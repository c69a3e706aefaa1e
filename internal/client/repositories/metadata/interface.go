// Package metadata persists small key/value pairs (the session token, the
// cached profile) in the client's local SQLite database.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns nil with no error when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

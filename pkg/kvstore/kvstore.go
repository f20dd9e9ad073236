// Package kvstore provides the durable key-value store used for shopping
// state snapshots. Values are opaque byte blobs; callers own serialization.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no value in the store.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is a string-keyed blob store with best-effort durability semantics.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key from the store. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

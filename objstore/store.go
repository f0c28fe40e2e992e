package objstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for a key-addressed object store.
//
// All operations are single blocking requests against an external service.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes an object under key, overwriting any existing object.
	// contentType may be empty.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the object stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns up to maxKeys keys starting with prefix, in lexicographic
	// order. maxKeys <= 0 means no limit.
	List(ctx context.Context, prefix string, maxKeys int) ([]string, error)

	// Delete removes the object stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// Package kvstore holds the key-value backends the application state is
// persisted in. Values are opaque JSON documents.
package kvstore

import (
	"context"
	"errors"
)

// Bucket is the namespace every backend stores the golf documents under.
const Bucket = "golf"

// ErrNotFound is returned by Get for keys that were never written.
var ErrNotFound = errors.New("key not found")

// Store is a synchronous key-value store. PutMany writes all entries or none.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	PutMany(ctx context.Context, entries map[string][]byte) error
	Close() error
}

// Package storage persists entity-store snapshots as JSON blobs in a
// key-value store.
package storage

import "context"

// KV is the minimal key-value contract the snapshot adapter needs. Keep it
// small for testability.
type KV interface {
	// Get returns the value for key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

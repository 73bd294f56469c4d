// Package blob defines the record-store port: an opaque key-value store the
// order repository persists through. Implementations only move text; they
// never look inside the blob.
package blob

import "context"

// Store is the persistence boundary. Get reports absence separately from
// failure so callers can tell "first run" apart from a broken store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

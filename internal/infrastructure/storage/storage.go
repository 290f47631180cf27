package storage

import "context"

// KeyValue is the durable string-keyed store the wishlist is built on:
// plain get/set/delete plus an ordered string-list slot per key.
type KeyValue interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// GetList returns the ordered list stored under key, empty if absent.
	GetList(ctx context.Context, key string) ([]string, error)
	// SetList replaces the ordered list stored under key.
	SetList(ctx context.Context, key string, values []string) error
	// Close releases the underlying connection.
	Close() error
}

// Package storage isolates the services from the key-value backend.
//
// KV is the raw byte contract every backend implements. Adapter layers JSON
// on top of it and turns unreadable stored values into "absent" instead of
// failing the caller.
//
// Every write replaces a whole value. Two processes writing the same key
// race and the last write wins; nothing here detects lost updates.
package storage

import "context"

// KV is a string-keyed byte store.
type KV interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// TxRunner is implemented by backends that can group several writes.
// fn receives a KV bound to the transaction; it commits when fn returns nil
// and rolls back when fn returns an error or panics.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, kv KV) error) error
}

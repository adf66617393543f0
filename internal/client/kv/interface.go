// Package kv is a small byte-valued key-value store backing the client's
// durable state. The attendance index lives here as one serialized blob
// under a single key.
package kv

import "context"

type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	// "No data" is indistinguishable from "never written".
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value in a single
	// statement.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

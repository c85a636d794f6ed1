package jobhunter

import "context"

// KV is the persistent key-value store behind jobs, settings and state.
type KV interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key is not set.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}

// Versioner is implemented by KVs that can report whether a value changed
// without returning it. Store uses it to validate cached values against
// writes made by other processes sharing the same KV.
type Versioner interface {
	// Version returns a token that differs whenever the value under key
	// differs. Returns ENOTFOUND if the key is not set.
	Version(ctx context.Context, key string) (string, error)
}

package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a keyed blob store. Values are opaque byte slices (in practice
// JSON-encoded collections). Implementations enforce a total-size quota and
// report ErrQuotaExceeded without partially writing.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Clear removes every key. Used by the full data reset.
	Clear(ctx context.Context) error
}

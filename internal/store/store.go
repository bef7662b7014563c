// Package store defines the key-value capability mood records are persisted
// through, with in-memory and logging implementations. SQL backends live in
// the sqlite and postgres subpackages.
package store

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by stores that refuse a write for capacity
// reasons.
var ErrQuotaExceeded = errors.New("store quota exceeded")

// KV is a persistent string key-value store. Implementations must be safe
// for concurrent use.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close(ctx context.Context) error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

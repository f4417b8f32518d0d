// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a KV backend for a key that was never written.
var ErrNotFound = errors.New("key not found")

// Record keys of the persisted workspace state.
const (
	KeyProjects = "projects"
	KeyTeam     = "team"
	KeyUser     = "user"
)

// KV defines the opaque key-value medium the workspace is persisted to.
// This abstraction allows swapping storage backends (SQLite, files, etc.)
// without changing the project store.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the backend.
	Close() error
}

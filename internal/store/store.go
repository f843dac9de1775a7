// Package store persists small JSON documents such as parameter presets.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value
var ErrNotFound = errors.New("not found")

// Store is a key/value store holding JSON-encoded values
type Store interface {
	Get(ctx context.Context, key string, v any) error
	Set(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Package kv is the durable string-to-string mapping the todo list is
// persisted into. Backends live in subpackages.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("kv: store closed")

// Store is a durable mapping from string keys to string values.
// Set replaces the whole value for key; writes to the same key are
// applied in call order.
type Store interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is the durable string-keyed storage behind persisted client state.
type Store interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}

package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "foody-cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "foody-cart", `{"state":{"items":{}},"version":0}`))
	value, err := store.Get(ctx, "foody-cart")
	require.NoError(t, err)
	assert.Equal(t, `{"state":{"items":{}},"version":0}`, value)

	require.NoError(t, store.Set(ctx, "foody-cart", `{"state":{"items":{"A":{}}},"version":0}`))
	value, err = store.Get(ctx, "foody-cart")
	require.NoError(t, err)
	assert.Equal(t, `{"state":{"items":{"A":{}}},"version":0}`, value)

	_, err = store.Get(ctx, "foody-auth")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

// Package kvtest holds behavior checks every kv.Store backend must pass.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/kv"
)

// Run exercises a fresh store returned by open.
func Run(t *testing.T, open func(t *testing.T) kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get(ctx, "@todos")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "@todos", `[{"text":"a","done":false}]`))
		v, ok, err := s.Get(ctx, "@todos")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"text":"a","done":false}]`, v)
	})

	t.Run("last write wins", func(t *testing.T) {
		s := open(t)
		for _, v := range []string{"one", "two", "three"} {
			require.NoError(t, s.Set(ctx, "k", v))
		}
		v, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "three", v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "b", "2"))
		v, _, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "k", ""))
		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("closed", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Close())
		assert.ErrorIs(t, s.Set(ctx, "k", "v"), kv.ErrClosed)
	})
}

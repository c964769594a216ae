package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/kv"
	"github.com/idilsaglam/tada/internal/kv/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		s, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSurvivesReopen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.db")
	ctx := context.Background()

	s1, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "@todos", `[{"text":"x","done":true}]`))
	require.NoError(t, s1.Close())

	s2, err := Open(p)
	require.NoError(t, err)
	defer s2.Close()
	v, ok, err := s2.Get(ctx, "@todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"x","done":true}]`, v)
}

func TestClosedStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	_, _, err = s.Get(context.Background(), "@todos")
	assert.ErrorIs(t, err, kv.ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "@todos", "[]"), kv.ErrClosed)
}

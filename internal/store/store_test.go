package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type preset struct {
	Roughness float64 `json:"roughness"`
	Cities    int     `json:"cities"`
}

func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "preset/coast", preset{Roughness: 0.4, Cities: 12}))

			var got preset
			require.NoError(t, s.Get(ctx, "preset/coast", &got))
			assert.Equal(t, preset{Roughness: 0.4, Cities: 12}, got)

			require.NoError(t, s.Set(ctx, "preset/coast", preset{Roughness: 1.2}))
			require.NoError(t, s.Get(ctx, "preset/coast", &got))
			assert.Equal(t, 1.2, got.Roughness)
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var got preset
			assert.ErrorIs(t, s.Get(ctx, "missing", &got), ErrNotFound)
			assert.ErrorIs(t, s.Remove(ctx, "missing"), ErrNotFound)
		})
	}
}

func TestStoreKeysAndRemove(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"preset/b", "preset/a", "other/x"} {
				require.NoError(t, s.Set(ctx, k, preset{}))
			}

			keys, err := s.Keys(ctx, "preset/")
			require.NoError(t, err)
			assert.Equal(t, []string{"preset/a", "preset/b"}, keys)

			require.NoError(t, s.Remove(ctx, "preset/a"))
			keys, err = s.Keys(ctx, "preset/")
			require.NoError(t, err)
			assert.Equal(t, []string{"preset/b"}, keys)
		})
	}
}

func TestSQLiteStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", preset{Cities: 3}))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	var got preset
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, 3, got.Cities)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	keys, err := s.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

package objstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	data := []byte(`{"id":"a"}`)
	require.NoError(t, store.Put(ctx, "vectors/a.json", data, "application/json"))

	got, err := store.Get(ctx, "vectors/a.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Mutating the returned slice must not affect the stored copy.
	got[0] = 'X'
	again, err := store.Get(ctx, "vectors/a.json")
	require.NoError(t, err)
	assert.Equal(t, data, again)

	require.NoError(t, store.Delete(ctx, "vectors/a.json"))
	_, err = store.Get(ctx, "vectors/a.json")
	require.ErrorIs(t, err, ErrNotFound)

	// Idempotent delete
	require.NoError(t, store.Delete(ctx, "vectors/a.json"))
}

func TestMemory_List(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, key := range []string{"vectors/b.json", "vectors/a.json", "other/c.json"} {
		require.NoError(t, store.Put(ctx, key, []byte("x"), ""))
	}

	keys, err := store.List(ctx, "vectors/", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"vectors/a.json", "vectors/b.json"}, keys)

	keys, err = store.List(ctx, "vectors/", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"vectors/a.json"}, keys)

	keys, err = store.List(ctx, "missing/", 0)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

package token

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "tokens.json"), zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.Nil(t, store.Load(ctx))

	pair := Pair{AccessToken: "access-1", RefreshToken: "refresh-1"}
	store.Save(ctx, pair)

	loaded := store.Load(ctx)
	require.NotNil(t, loaded)
	require.Equal(t, pair, *loaded)

	store.Clear(ctx)
	require.Nil(t, store.Load(ctx))

	// Clear on an already-empty store must not blow up.
	store.Clear(ctx)
	require.Nil(t, store.Load(ctx))
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	store.Save(ctx, Pair{AccessToken: "a1", RefreshToken: "r1"})
	store.Save(ctx, Pair{AccessToken: "a2", RefreshToken: "r2"})

	loaded := store.Load(ctx)
	require.NotNil(t, loaded)
	require.Equal(t, "a2", loaded.AccessToken)
	require.Equal(t, "r2", loaded.RefreshToken)
}

func TestFileStoreMissingHalfIsNil(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{AccessTokenKey: "only-access"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	require.Nil(t, store.Load(ctx))
}

func TestFileStoreCorruptFileIsNil(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	require.Nil(t, store.Load(ctx))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.Nil(t, store.Load(ctx))

	store.Save(ctx, Pair{AccessToken: "a", RefreshToken: "r"})
	loaded := store.Load(ctx)
	require.NotNil(t, loaded)
	require.Equal(t, Pair{AccessToken: "a", RefreshToken: "r"}, *loaded)

	store.Clear(ctx)
	require.Nil(t, store.Load(ctx))
	store.Clear(ctx)
}

func TestMemoryStoreMissingHalfIsNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Save(ctx, Pair{AccessToken: "a"})
	require.Nil(t, store.Load(ctx))
}

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveIsValidRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".cache"))

	require.NoError(t, store.Save("deadbeefdeadbeef"))
	assert.True(t, store.IsValid("deadbeefdeadbeef"))
	assert.False(t, store.IsValid("0000000000000000"))
}

func TestStore_IsValidOnAbsentCache(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".cache"))
	assert.False(t, store.IsValid("deadbeefdeadbeef"))
}

func TestStore_IsValidTrimsStoredContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".cache")
	store := NewStore(dir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyFileName), []byte("abc123\n"), 0644))

	assert.True(t, store.IsValid("abc123"))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".cache"))

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))
	assert.False(t, store.IsValid("first"))
	assert.True(t, store.IsValid("second"))
}

func TestStore_CleanIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".cache"))

	require.NoError(t, store.Save("abc"))
	require.NoError(t, store.Clean())
	require.NoError(t, store.Clean())
	assert.False(t, store.IsValid("abc"))

	_, err := os.Stat(store.Dir())
	assert.True(t, os.IsNotExist(err))
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		key := GenerateKey("payment.jpg")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestGenerateKeyPreservesExtension(t *testing.T) {
	assert.True(t, strings.HasSuffix(GenerateKey("screenshot.PNG"), ".png"))
	assert.True(t, strings.HasSuffix(GenerateKey("photo.jpg"), ".jpg"))
	assert.False(t, strings.Contains(GenerateKey("noext"), "."))
}

func TestDiskStorePutAndReadBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads/")
	require.NoError(t, err)

	content := []byte("jpeg bytes")
	url, err := store.Put(context.Background(), "1700000000000-abc12345.jpg", "image/jpeg", content)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-abc12345.jpg", url)

	got, err := os.ReadFile(filepath.Join(dir, "1700000000000-abc12345.jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDiskStoreRejectsSeparatorKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.jpg", "a/b.jpg", `a\b.jpg`} {
		_, err := store.Put(context.Background(), key, "image/jpeg", []byte("x"))
		assert.Error(t, err, "key %q must be rejected", key)
	}
}

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDiskStore(dir, "/uploads")
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

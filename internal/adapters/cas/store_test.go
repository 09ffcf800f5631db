package cas_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/adapters/cas"
	"go.trai.ch/libpack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "state"))

	info := domain.BuildInfo{
		Library:      "foo@1.2.3",
		ManifestHash: "abc",
		AssetsHash:   "def",
		Assets:       []string{"index.js", "lib.manifest.json"},
		Timestamp:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("foo@1.2.3")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	assert.Equal(t, info, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	got, err := store.Get("never@1.0.0")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	require.NoError(t, cas.NewStore(dir).Put(domain.BuildInfo{Library: "bar@2.0.0", AssetsHash: "xyz"}))

	got, err := cas.NewStore(dir).Get("bar@2.0.0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xyz", got.AssetsHash)
}

func TestStore_FilePerLibrary(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore(dir)

	require.NoError(t, store.Put(domain.BuildInfo{Library: "foo@1.0.0"}))
	require.NoError(t, store.Put(domain.BuildInfo{Library: "foo@2.0.0"}))
	require.NoError(t, store.Put(domain.BuildInfo{Library: "foo@1.0.0", AssetsHash: "new"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	hash := sha256.Sum256([]byte("foo@1.0.0"))
	_, err = os.Stat(filepath.Join(dir, hex.EncodeToString(hash[:])+".json"))
	require.NoError(t, err)
}

func TestStore_Errors(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore(dir)

	require.Error(t, store.Put(domain.BuildInfo{}))

	hash := sha256.Sum256([]byte("broken@1.0.0"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, hex.EncodeToString(hash[:])+".json"), []byte("{"), 0o600))
	_, err := store.Get("broken@1.0.0")
	require.Error(t, err)
}

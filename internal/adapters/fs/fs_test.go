package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   styles/github.css
	//   index.js
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "styles", "github.css"), "body{}")
	writeFile(t, filepath.Join(tmpDir, "index.js"), "System.register([], function(){})")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[rel] = true
	}

	if files[filepath.Join(".git", "config")] {
		t.Error("expected .git/config to be skipped")
	}
	if files[filepath.Join("ignored", "file")] {
		t.Error("expected ignored/file to be skipped")
	}
	if !files[filepath.Join("styles", "github.css")] {
		t.Error("expected styles/github.css to be found")
	}
	if !files["index.js"] {
		t.Error("expected index.js to be found")
	}
}

func TestWalker_RelativeFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "index.js"), "js")
	writeFile(t, filepath.Join(tmpDir, "index.js.map"), "map")
	writeFile(t, filepath.Join(tmpDir, "styles", "github.css"), "css")

	files, err := fs.NewWalker().RelativeFiles(tmpDir, []string{"*.map"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.js", "styles/github.css"}, files)
}

func TestWalker_RelativeFiles_EarlyStop(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "a")
	writeFile(t, filepath.Join(tmpDir, "b"), "b")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dep.manifest.yml")
	writeFile(t, path, "name: foo\nversion: 1.0.0\n")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	if err != nil {
		t.Fatalf("ComputeFileHash failed: %v", err)
	}
	if hash1 == 0 {
		t.Error("expected non-zero hash")
	}

	hash2, err := hasher.ComputeFileHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Error("expected deterministic hash")
	}
}

func TestHasher_HashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	digest, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, digest, 16)

	_, err = hasher.HashFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestHasher_HashTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.js"), "js")
	writeFile(t, filepath.Join(root, "index.css"), "css")

	hasher := fs.NewHasher(fs.NewWalker())

	digest1, files, err := hasher.HashTree(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.css", "index.js"}, files)

	digest2, _, err := hasher.HashTree(root)
	require.NoError(t, err)
	assert.Equal(t, digest1, digest2)

	// Content change.
	writeFile(t, filepath.Join(root, "index.js"), "js v2")
	digest3, _, err := hasher.HashTree(root)
	require.NoError(t, err)
	assert.NotEqual(t, digest1, digest3)

	// Rename with identical content.
	require.NoError(t, os.Rename(filepath.Join(root, "index.css"), filepath.Join(root, "main.css")))
	digest4, _, err := hasher.HashTree(root)
	require.NoError(t, err)
	assert.NotEqual(t, digest3, digest4)
}

func TestHasher_HashTree_NotADirectory(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	_, _, err := hasher.HashTree(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")
	_, _, err = hasher.HashTree(file)
	require.Error(t, err)
}

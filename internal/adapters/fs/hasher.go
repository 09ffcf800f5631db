package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash digests of manifests and bundle outputs.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashFile returns the hex digest of a single file.
func (h *Hasher) HashFile(path string) (string, error) {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// HashTree digests every file below root. Each file contributes its relative path
// and content hash, so renames change the digest.
func (h *Hasher) HashTree(root string) (string, []string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, "failed to stat directory"), "path", root)
	}
	if !info.IsDir() {
		return "", nil, zerr.With(zerr.New("not a directory"), "path", root)
	}

	files, err := h.walker.RelativeFiles(root, nil)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, "failed to list files"), "path", root)
	}

	hasher := xxhash.New()
	for _, rel := range files {
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})

		sum, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return "", nil, err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", nil, zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), files, nil
}

// Package cas implements the build ledger, one JSON file per library version.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.BuildInfoStore using a file-per-library strategy.
type Store struct {
	dir string
}

// NewStore creates a new BuildInfoStore keeping its files in dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Get retrieves the build info for a library id. It returns nil, nil when the
// library has never been built.
func (s *Store) Get(library string) (*domain.BuildInfo, error) {
	filename := s.filename(library)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build info"), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build info"), "path", filename)
	}

	return &info, nil
}

// Put stores the build info, replacing any previous entry of the library.
func (s *Store) Put(info domain.BuildInfo) error {
	if info.Library == "" {
		return zerr.New("build info has no library")
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info")
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build info directory"), "path", s.dir)
	}

	filename := s.filename(info.Library)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build info"), "path", filename)
	}

	return nil
}

func (s *Store) filename(library string) string {
	hash := sha256.Sum256([]byte(library))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}

// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the path of every file below root, skipping VCS directories and
// entries whose base name matches one of the ignore patterns. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// RelativeFiles returns the files below root relative to it, slash separated and sorted.
func (w *Walker) RelativeFiles(root string, ignores []string) ([]string, error) {
	var files []string
	for path := range w.WalkFiles(root, ignores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, err
		}
		files = append(files, filepath.ToSlash(rel))
	}
	// WalkDir visits in lexical order already.
	return files, nil
}

// shouldSkip reports whether d is excluded. For directories the action is SkipDir.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}

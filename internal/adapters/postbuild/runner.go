// Package postbuild runs the optional script a library ships to adjust its bundle.
package postbuild

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables handed to the script.
const (
	EnvManifest  = "MANIFEST"
	EnvOutputDir = "OUTPUT_DIR"
)

// Runner implements ports.PostbuildRunner.
type Runner struct {
	cfg      *domain.Config
	executor ports.Executor
}

// New creates a Runner.
func New(cfg *domain.Config, executor ports.Executor) *Runner {
	return &Runner{cfg: cfg, executor: executor}
}

// Run executes the postbuild command in the library folder when the library has a
// postbuild script. Libraries without one are left alone.
func (r *Runner) Run(ctx context.Context, lib domain.Library, outDir string) error {
	if len(r.cfg.Postbuild) == 0 || r.cfg.PostbuildScript == "" {
		return nil
	}

	script := filepath.Join(lib.Folder, r.cfg.PostbuildScript)
	info, err := os.Stat(script)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to stat postbuild script"), "path", script))
	}
	if info.IsDir() {
		return nil
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve output folder"), "path", outDir)
	}

	manifest, err := json.Marshal(domain.NewBundleManifest(lib.Manifest, r.hasStylesheet(absOut)))
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	cmd := domain.Command{
		Name: r.cfg.Postbuild[0],
		Args: r.cfg.Postbuild[1:],
		Dir:  lib.Folder,
		Env: map[string]string{
			EnvManifest:  string(manifest),
			EnvOutputDir: absOut,
		},
	}
	if err := r.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "postbuild script failed"), "library", lib.Manifest.ID())
	}
	return nil
}

func (r *Runner) hasStylesheet(outDir string) bool {
	info, err := os.Stat(filepath.Join(outDir, r.cfg.StylesheetFile))
	return err == nil && info.Mode().IsRegular()
}

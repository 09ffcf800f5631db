// Package bundler drives the external bundler that turns a library entry module
// into a SystemJS bundle.
package bundler

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/libpack/internal/adapters/fs"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Placeholders substituted in the configured bundler command.
const (
	// PlaceholderConfig is the bundler configuration file.
	PlaceholderConfig = "{config}"
	// PlaceholderOptions is the options file of the current library.
	PlaceholderOptions = "{options}"
	PlaceholderEntry   = "{entry}"
	PlaceholderOut     = "{out}"
)

// ConfigEnv names the environment variable carrying the options file path to the bundler.
const ConfigEnv = "LIBPACK_BUNDLE_CONFIG"

// DefaultConfigName is the file the built-in webpack configuration is written to.
const DefaultConfigName = "webpack.config.cjs"

//go:embed webpack.config.cjs
var defaultConfig []byte

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Bundler implements ports.Bundler by running the configured bundler command.
type Bundler struct {
	cfg      *domain.Config
	executor ports.Executor
	walker   *fs.Walker
}

// New creates a Bundler.
func New(cfg *domain.Config, executor ports.Executor, walker *fs.Walker) *Bundler {
	return &Bundler{cfg: cfg, executor: executor, walker: walker}
}

// Bundle writes the bundler options of lib, runs the bundler and lists the emitted files.
func (b *Bundler) Bundle(ctx context.Context, lib domain.Library, outDir string) (domain.BundleResult, error) {
	opts := NewOptions(b.cfg, lib, outDir)

	optionsPath, err := b.writeOptions(lib.Manifest, opts)
	if err != nil {
		return domain.BundleResult{}, err
	}

	configPath, err := b.configFile()
	if err != nil {
		return domain.BundleResult{}, err
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return domain.BundleResult{}, zerr.With(zerr.Wrap(err, "failed to create output folder"), "path", outDir)
	}

	cmd := b.command(opts, configPath, optionsPath)
	if err := b.executor.Execute(ctx, cmd); err != nil {
		if ctx.Err() != nil {
			return domain.BundleResult{}, err
		}
		return domain.BundleResult{}, zerr.With(zerr.Wrap(err, "bundler failed"), "library", lib.Manifest.ID())
	}

	if _, err := os.Stat(filepath.Join(outDir, b.cfg.OutputFile)); err != nil {
		missing := zerr.With(zerr.New("bundler produced no output file"), "path", filepath.Join(outDir, b.cfg.OutputFile))
		return domain.BundleResult{}, errors.Join(domain.ErrProcess, missing)
	}

	assets, err := b.walker.RelativeFiles(outDir, nil)
	if err != nil {
		return domain.BundleResult{}, zerr.With(zerr.Wrap(err, "failed to list bundle assets"), "path", outDir)
	}

	return domain.BundleResult{OutputDir: outDir, Assets: assets}, nil
}

// configFile returns the configured bundler config, or writes the built-in webpack
// configuration to the state directory when none is set.
func (b *Bundler) configFile() (string, error) {
	if b.cfg.BundlerConfig != "" {
		return b.cfg.BundlerConfig, nil
	}

	dir := b.stateDir()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create bundler state directory"), "path", dir)
	}

	path := filepath.Join(dir, DefaultConfigName)
	if err := os.WriteFile(path, defaultConfig, filePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write bundler config"), "path", path)
	}
	return path, nil
}

func (b *Bundler) stateDir() string {
	return filepath.Join(b.cfg.StateDir, "bundler")
}

// writeOptions stores the options under the state directory, outside the cleaned output folder.
func (b *Bundler) writeOptions(m domain.Manifest, opts Options) (string, error) {
	dir := b.stateDir()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create bundler options directory"), "path", dir)
	}

	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal bundler options")
	}

	path := filepath.Join(dir, OptionsFileName(m))
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write bundler options"), "path", path)
	}
	return path, nil
}

func (b *Bundler) command(opts Options, configPath, optionsPath string) domain.Command {
	replacer := strings.NewReplacer(
		PlaceholderConfig, configPath,
		PlaceholderOptions, optionsPath,
		PlaceholderEntry, opts.Entry,
		PlaceholderOut, opts.Output.Path,
	)

	argv := make([]string, len(b.cfg.Bundler))
	for i, arg := range b.cfg.Bundler {
		argv[i] = replacer.Replace(arg)
	}

	return domain.Command{
		Name: argv[0],
		Args: argv[1:],
		Dir:  b.cfg.Root,
		Env: map[string]string{
			"NODE_ENV": "production",
			ConfigEnv:  optionsPath,
		},
	}
}

// OptionsFileName returns the options file name of a library, flattening npm scopes.
func OptionsFileName(m domain.Manifest) string {
	name := strings.ReplaceAll(m.Name, "/", "__")
	return name + "@" + m.Version + ".json"
}

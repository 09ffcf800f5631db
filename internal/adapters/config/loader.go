// Package config loads the workspace configuration from libpack.yaml, the environment and flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// FileName is the configuration file looked up in the workspace root.
	FileName = "libpack"
	// EnvPrefix prefixes the environment variables that override configuration keys.
	EnvPrefix = "LIBPACK"
)

// Keys of the configuration file.
const (
	KeySourceDir          = "sourceDir"
	KeyDistDir            = "distDir"
	KeyStateDir           = "stateDir"
	KeyManifestFile       = "manifestFile"
	KeyBundleManifestFile = "bundleManifestFile"
	KeyEntryFile          = "entryFile"
	KeyOutputFile         = "outputFile"
	KeyStylesheetFile     = "stylesheetFile"
	KeyPostbuildScript    = "postbuildScript"
	KeyPackageManager     = "packageManager"
	KeyBundler            = "bundler"
	KeyBundlerConfig      = "bundlerConfig"
	KeyPostbuild          = "postbuild"
	KeyStrict             = "strict"
	KeyLogLevel           = "logLevel"
	KeyPrompt             = "prompt"
)

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	v   *viper.Viper
	cwd string
}

// NewLoader creates a Loader reading through v. The workspace root is the directory
// of the configuration file, or cwd when there is none.
func NewLoader(v *viper.Viper, cwd string) *Loader {
	return &Loader{v: v, cwd: cwd}
}

// fileConfig mirrors libpack.yaml.
type fileConfig struct {
	SourceDir          string   `mapstructure:"sourceDir"`
	DistDir            string   `mapstructure:"distDir"`
	StateDir           string   `mapstructure:"stateDir"`
	ManifestFile       string   `mapstructure:"manifestFile"`
	BundleManifestFile string   `mapstructure:"bundleManifestFile"`
	EntryFile          string   `mapstructure:"entryFile"`
	OutputFile         string   `mapstructure:"outputFile"`
	StylesheetFile     string   `mapstructure:"stylesheetFile"`
	PostbuildScript    string   `mapstructure:"postbuildScript"`
	PackageManager     string   `mapstructure:"packageManager"`
	Bundler            []string `mapstructure:"bundler"`
	BundlerConfig      string   `mapstructure:"bundlerConfig"`
	Postbuild          []string `mapstructure:"postbuild"`
	Strict             bool     `mapstructure:"strict"`
	LogLevel           string   `mapstructure:"logLevel"`
	Prompt             string   `mapstructure:"prompt"`
}

// Load reads defaults, the configuration file, LIBPACK_* variables and bound flags,
// in increasing priority, and returns the validated configuration.
func (l *Loader) Load() (*domain.Config, error) {
	setDefaults(l.v)

	explicit := l.v.ConfigFileUsed() != ""
	if !explicit {
		l.v.SetConfigName(FileName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(l.cwd)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, errors.Join(domain.ErrInvalidConfig, zerr.Wrap(err, "failed to read config file"))
		}
	}

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	var fc fileConfig
	if err := l.v.Unmarshal(&fc); err != nil {
		return nil, errors.Join(domain.ErrInvalidConfig, zerr.Wrap(err, "failed to decode config"))
	}

	root := l.cwd
	if used := l.v.ConfigFileUsed(); used != "" {
		abs, err := filepath.Abs(used)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve config file path")
		}
		root = filepath.Dir(abs)
	}

	return resolve(fc, root)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceDir, "dependencies/libs")
	v.SetDefault(KeyDistDir, "dist")
	v.SetDefault(KeyStateDir, ".libpack")
	v.SetDefault(KeyManifestFile, "dep.manifest.yml")
	v.SetDefault(KeyBundleManifestFile, "lib.manifest.json")
	v.SetDefault(KeyEntryFile, "main.js")
	v.SetDefault(KeyOutputFile, "index.js")
	v.SetDefault(KeyStylesheetFile, "index.css")
	v.SetDefault(KeyPostbuildScript, "postbuild.js")
	v.SetDefault(KeyPackageManager, "pnpm")
	v.SetDefault(KeyBundler, []string{"pnpm", "exec", "webpack", "--config", "{config}"})
	v.SetDefault(KeyBundlerConfig, "")
	v.SetDefault(KeyPostbuild, []string{"node", "postbuild.js"})
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPrompt, string(domain.PromptAuto))
}

// resolve validates fc and makes its directories absolute against root.
func resolve(fc fileConfig, root string) (*domain.Config, error) {
	required := []struct {
		key   string
		value string
	}{
		{KeySourceDir, fc.SourceDir},
		{KeyDistDir, fc.DistDir},
		{KeyStateDir, fc.StateDir},
		{KeyManifestFile, fc.ManifestFile},
		{KeyBundleManifestFile, fc.BundleManifestFile},
		{KeyEntryFile, fc.EntryFile},
		{KeyOutputFile, fc.OutputFile},
		{KeyStylesheetFile, fc.StylesheetFile},
		{KeyPostbuildScript, fc.PostbuildScript},
		{KeyPackageManager, fc.PackageManager},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, invalid("value must not be empty", r.key, r.value)
		}
	}

	fileNames := []struct {
		key   string
		value string
	}{
		{KeyManifestFile, fc.ManifestFile},
		{KeyBundleManifestFile, fc.BundleManifestFile},
		{KeyEntryFile, fc.EntryFile},
		{KeyOutputFile, fc.OutputFile},
		{KeyStylesheetFile, fc.StylesheetFile},
		{KeyPostbuildScript, fc.PostbuildScript},
	}
	for _, f := range fileNames {
		if filepath.Base(f.value) != f.value {
			return nil, invalid("value must be a plain file name", f.key, f.value)
		}
	}

	if len(fc.Bundler) == 0 {
		return nil, invalid("bundler command must not be empty", KeyBundler, "")
	}

	level, ok := domain.ParseLogLevel(fc.LogLevel)
	if !ok {
		return nil, invalid("unknown log level", KeyLogLevel, fc.LogLevel)
	}

	prompt, ok := domain.ParsePromptMode(fc.Prompt)
	if !ok {
		return nil, invalid("unknown prompt mode", KeyPrompt, fc.Prompt)
	}

	root = filepath.Clean(root)

	var bundlerConfig string
	if strings.TrimSpace(fc.BundlerConfig) != "" {
		bundlerConfig = absolute(root, fc.BundlerConfig)
	}

	return &domain.Config{
		Root:               root,
		SourceDir:          absolute(root, fc.SourceDir),
		DistDir:            absolute(root, fc.DistDir),
		StateDir:           absolute(root, fc.StateDir),
		ManifestFile:       fc.ManifestFile,
		BundleManifestFile: fc.BundleManifestFile,
		EntryFile:          fc.EntryFile,
		OutputFile:         fc.OutputFile,
		StylesheetFile:     fc.StylesheetFile,
		PostbuildScript:    fc.PostbuildScript,
		PackageManager:     fc.PackageManager,
		Bundler:            fc.Bundler,
		BundlerConfig:      bundlerConfig,
		Postbuild:          fc.Postbuild,
		Strict:             fc.Strict,
		LogLevel:           level,
		Prompt:             prompt,
	}, nil
}

func absolute(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func invalid(msg, key, value string) error {
	err := zerr.With(zerr.New(msg), "key", key)
	if value != "" {
		err = zerr.With(err, "value", value)
	}
	return errors.Join(domain.ErrInvalidConfig, err)
}

// WorkingDir returns the current directory, the default workspace root.
func WorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return wd, nil
}

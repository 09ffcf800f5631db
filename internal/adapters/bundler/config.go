package bundler

import (
	"path/filepath"

	"go.trai.ch/libpack/internal/core/domain"
)

const (
	// sizeLimit is the entrypoint and asset size budget, in bytes.
	sizeLimit = 2000000
	// compressionThreshold is the size above which assets are also emitted gzipped.
	compressionThreshold = 12800
)

// Options is the bundler configuration of one library build. It is handed to the
// bundler as a JSON file; the bundler config file maps it onto webpack options.
type Options struct {
	Mode        string            `json:"mode"`
	Devtool     string            `json:"devtool"`
	Entry       string            `json:"entry"`
	Output      Output            `json:"output"`
	Stylesheet  string            `json:"stylesheet"`
	Externals   map[string]string `json:"externals"`
	Extensions  []string          `json:"extensions"`
	Performance Performance       `json:"performance"`
	Compression Compression       `json:"compression"`
}

// Output describes where and how the bundle is emitted.
type Output struct {
	Path          string `json:"path"`
	Filename      string `json:"filename"`
	LibraryTarget string `json:"libraryTarget"`
	Clean         bool   `json:"clean"`
}

// Performance holds the size limits the bundler warns about.
type Performance struct {
	MaxEntrypointSize int `json:"maxEntrypointSize"`
	MaxAssetSize      int `json:"maxAssetSize"`
}

// Compression configures precompressed copies of large assets.
type Compression struct {
	Threshold int `json:"threshold"`
}

// NewOptions builds the configuration producing a SystemJS bundle of lib in outDir.
// Declared dependencies stay external and resolve to their own versioned bundles.
func NewOptions(cfg *domain.Config, lib domain.Library, outDir string) Options {
	return Options{
		Mode:       "production",
		Devtool:    "source-map",
		Entry:      filepath.Join(lib.Folder, cfg.EntryFile),
		Stylesheet: cfg.StylesheetFile,
		Output: Output{
			Path:          outDir,
			Filename:      cfg.OutputFile,
			LibraryTarget: "system",
			Clean:         true,
		},
		Externals:  lib.Manifest.Externals(),
		Extensions: []string{".ts", ".js"},
		Performance: Performance{
			MaxEntrypointSize: sizeLimit,
			MaxAssetSize:      sizeLimit,
		},
		Compression: Compression{Threshold: compressionThreshold},
	}
}

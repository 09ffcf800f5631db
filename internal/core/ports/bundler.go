package ports

import (
	"context"

	"go.trai.ch/libpack/internal/core/domain"
)

// Bundler produces the SystemJS bundle of a library.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle builds the library into outDir and reports the emitted assets.
	Bundle(ctx context.Context, lib domain.Library, outDir string) (domain.BundleResult, error)
}

// PostbuildRunner runs the optional per-library postbuild script.
type PostbuildRunner interface {
	// Run executes the library's postbuild script, if it has one.
	Run(ctx context.Context, lib domain.Library, outDir string) error
}

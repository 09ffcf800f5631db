package ports

import "go.trai.ch/libpack/internal/core/domain"

// ManifestReader parses library manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path. It never caches.
	Read(path string) (domain.Manifest, error)
}

// BundleManifestWriter writes the bundle manifest sidecar of a finished build.
type BundleManifestWriter interface {
	// Write serializes the bundle manifest into outDir, overwriting any previous one.
	Write(manifest domain.Manifest, outDir string) (domain.BundleManifest, error)
}

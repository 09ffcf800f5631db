package domain

import (
	"maps"
	"slices"
)

// DefaultSchema is the manifest schema assumed when a manifest does not declare one.
const DefaultSchema = "1.0.0"

// Manifest describes a library version and the pinned packages it needs at build time.
type Manifest struct {
	Name         string
	Version      string
	Schema       string
	Dependencies map[string]string
}

// ID returns the library identity as name@version.
func (m Manifest) ID() string {
	return Package{Name: m.Name, Version: m.Version}.String()
}

// Packages returns the library itself followed by its declared dependencies,
// ordered by name so package manager invocations are deterministic.
func (m Manifest) Packages() []Package {
	pkgs := make([]Package, 0, len(m.Dependencies)+1)
	pkgs = append(pkgs, Package{Name: m.Name, Version: m.Version})
	for _, name := range slices.Sorted(maps.Keys(m.Dependencies)) {
		pkgs = append(pkgs, Package{Name: name, Version: m.Dependencies[name]})
	}
	return pkgs
}

// Externals maps each declared dependency to its versioned module id.
// The bundler leaves these imports unresolved so they load as separate bundles.
func (m Manifest) Externals() map[string]string {
	externals := make(map[string]string, len(m.Dependencies))
	for name, version := range m.Dependencies {
		externals[name] = Package{Name: name, Version: version}.String()
	}
	return externals
}

// Library is a buildable library version found in the source tree.
type Library struct {
	Folder   string
	Manifest Manifest
}

// BundleManifest is the sidecar written next to a finished bundle.
type BundleManifest struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Schema        string            `json:"schema"`
	HasStylesheet bool              `json:"hasStylesheet"`
	Dependencies  map[string]string `json:"dependencies,omitempty"`
}

// NewBundleManifest derives the bundle manifest of a built library.
func NewBundleManifest(m Manifest, hasStylesheet bool) BundleManifest {
	var deps map[string]string
	if len(m.Dependencies) > 0 {
		deps = maps.Clone(m.Dependencies)
	}
	return BundleManifest{
		Name:          m.Name,
		Version:       m.Version,
		Schema:        m.Schema,
		HasStylesheet: hasStylesheet,
		Dependencies:  deps,
	}
}

// SelectionEntry is one row of the interactive library picker.
// Name-level rows are disabled group headers; version rows carry the library folder.
type SelectionEntry struct {
	Label    string
	Value    string
	Disabled bool
}

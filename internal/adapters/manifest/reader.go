// Package manifest reads library manifests and writes bundle manifests.
package manifest

import (
	"errors"
	"maps"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is the on-disk manifest, including the legacy keys still found in older libraries.
type document struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Schema       string            `yaml:"schema,omitempty"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`

	// Legacy keys, migrated on read.
	SchemaVersion string            `yaml:"schema_version,omitempty"`
	Libs          map[string]string `yaml:"libs,omitempty"`
	Dependences   map[string]string `yaml:"dependences,omitempty"`
}

// Reader implements ports.ManifestReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the manifest at path. JSON manifests are accepted as well.
func (r *Reader) Read(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the catalog scan
	if err != nil {
		return domain.Manifest{}, parseError(zerr.Wrap(err, "failed to read manifest"), path)
	}

	m, err := Decode(data)
	if err != nil {
		return domain.Manifest{}, parseError(err, path)
	}
	return m, nil
}

// Decode parses manifest bytes into the canonical form.
func Decode(data []byte) (domain.Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "malformed manifest")
	}

	m := domain.Manifest{
		Name:         strings.TrimSpace(doc.Name),
		Version:      strings.TrimSpace(doc.Version),
		Schema:       firstNonEmpty(doc.Schema, doc.SchemaVersion, domain.DefaultSchema),
		Dependencies: firstNonEmptyMap(doc.Dependencies, doc.Libs, doc.Dependences),
	}

	if err := validateName(m.Name); err != nil {
		return domain.Manifest{}, err
	}
	if err := validatePin(m.Version); err != nil {
		return domain.Manifest{}, zerr.With(err, "library", m.Name)
	}
	for name, version := range m.Dependencies {
		if err := validateName(name); err != nil {
			return domain.Manifest{}, zerr.With(err, "dependency", name)
		}
		if err := validatePin(version); err != nil {
			return domain.Manifest{}, zerr.With(err, "dependency", name)
		}
	}

	return m, nil
}

// Encode renders m in the canonical schema.
func Encode(m domain.Manifest) ([]byte, error) {
	doc := document{
		Name:         m.Name,
		Version:      m.Version,
		Schema:       firstNonEmpty(m.Schema, domain.DefaultSchema),
		Dependencies: m.Dependencies,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode manifest")
	}
	return data, nil
}

// validateName accepts package names that stay a single folder level below the source
// and dist roots, or two for scoped names.
func validateName(name string) error {
	if name == "" {
		return zerr.New("manifest has no name")
	}
	if strings.ContainsAny(name, "\\:") || strings.HasPrefix(name, "/") {
		return zerr.With(zerr.New("name is not a package name"), "name", name)
	}

	segments := strings.Split(name, "/")
	scoped := strings.HasPrefix(name, "@")
	if (scoped && len(segments) != 2) || (!scoped && len(segments) != 1) {
		return zerr.With(zerr.New("name is not a package name"), "name", name)
	}
	for _, segment := range segments {
		if segment == "" || segment == "@" || segment == "." || segment == ".." {
			return zerr.With(zerr.New("name is not a package name"), "name", name)
		}
	}
	return nil
}

// validatePin accepts exact versions only; the package manager installs what is written.
func validatePin(version string) error {
	if version == "" {
		return zerr.New("version is empty")
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return zerr.With(zerr.Wrap(err, "version is not an exact semver pin"), "version", version)
	}
	return nil
}

func parseError(err error, path string) error {
	return errors.Join(domain.ErrManifestParse, zerr.With(err, "path", path))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyMap(candidates ...map[string]string) map[string]string {
	for _, c := range candidates {
		if len(c) > 0 {
			return maps.Clone(c)
		}
	}
	return nil
}

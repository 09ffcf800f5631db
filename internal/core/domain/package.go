package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Package is a pinned npm package reference.
type Package struct {
	Name    string
	Version string
}

// String renders the package as name@version, or just the name when unpinned.
func (p Package) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// ParsePackage parses a name@version reference. Scoped names such as
// @scope/pkg@1.0.0 are split at the last '@'.
func ParsePackage(ref string) (Package, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "@")
	if idx <= 0 || idx == len(ref)-1 {
		return Package{}, zerr.With(zerr.Wrap(ErrInvalidReference, "expected name@version"), "reference", ref)
	}
	return Package{Name: ref[:idx], Version: ref[idx+1:]}, nil
}

// PackageNames returns the names of the given packages in order.
func PackageNames(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}

// ToggleOp is a package manager operation applied around a build.
type ToggleOp string

const (
	// ToggleAdd installs the packages pinned at their exact versions.
	ToggleAdd ToggleOp = "add"
	// ToggleRemove uninstalls the packages.
	ToggleRemove ToggleOp = "remove"
)

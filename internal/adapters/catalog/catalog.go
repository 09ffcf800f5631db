// Package catalog discovers the libraries of the source tree.
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/libpack/internal/adapters/manifest"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Catalog implements ports.Catalog over a <source>/<name>/<version>/ layout.
type Catalog struct {
	cfg    *domain.Config
	reader ports.ManifestReader
	logger ports.Logger
}

// New creates a Catalog for the source directory of cfg.
func New(cfg *domain.Config, reader ports.ManifestReader, logger ports.Logger) *Catalog {
	return &Catalog{cfg: cfg, reader: reader, logger: logger}
}

// version is a version folder that holds a manifest file.
type version struct {
	name   string
	folder string
}

// scan lists the library names and, for each, the version folders holding a manifest.
// Scoped packages live one level deeper, under <source>/@scope/<name>/.
func (c *Catalog) scan() ([]string, map[string][]version, error) {
	names, err := c.names()
	if err != nil {
		return nil, nil, err
	}

	versions := make(map[string][]version)
	for _, name := range names {
		nameDir := filepath.Join(c.cfg.SourceDir, filepath.FromSlash(name))
		children, err := os.ReadDir(nameDir)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, "failed to read library directory"), "path", nameDir)
		}
		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			folder := filepath.Join(nameDir, child.Name())
			if !isFile(filepath.Join(folder, c.cfg.ManifestFile)) {
				continue
			}
			versions[name] = append(versions[name], version{name: name, folder: folder})
		}
	}

	return names, versions, nil
}

func (c *Catalog) names() ([]string, error) {
	entries, err := os.ReadDir(c.cfg.SourceDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read library source directory"), "path", c.cfg.SourceDir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), "@") {
			names = append(names, entry.Name())
			continue
		}

		scopeDir := filepath.Join(c.cfg.SourceDir, entry.Name())
		scoped, err := os.ReadDir(scopeDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read scope directory"), "path", scopeDir)
		}
		for _, pkg := range scoped {
			if pkg.IsDir() {
				names = append(names, entry.Name()+"/"+pkg.Name())
			}
		}
	}
	return names, nil
}

// Libraries returns every version folder with a readable manifest, in directory listing order.
// Folders whose manifest fails to parse are reported and skipped.
func (c *Catalog) Libraries() ([]domain.Library, error) {
	names, versions, err := c.scan()
	if err != nil {
		return nil, err
	}

	var libs []domain.Library
	for _, name := range names {
		for _, v := range versions[name] {
			lib, ok := c.load(v)
			if ok {
				libs = append(libs, lib)
			}
		}
	}
	return libs, nil
}

// load reads the manifest of v. The manifest must name the library of its folder,
// so that each name and version pair maps to exactly one folder.
func (c *Catalog) load(v version) (domain.Library, bool) {
	m, err := c.reader.Read(filepath.Join(v.folder, c.cfg.ManifestFile))
	if err != nil {
		c.logger.Warn("skipping " + c.relative(v.folder) + ": " + err.Error())
		return domain.Library{}, false
	}

	if want := v.name + "@" + filepath.Base(v.folder); m.ID() != want {
		c.logger.Warn("skipping " + c.relative(v.folder) + ": manifest declares " + m.ID() + ", folder expects " + want)
		return domain.Library{}, false
	}
	return domain.Library{Folder: v.folder, Manifest: m}, true
}

// Selection returns a disabled header per library name followed by its selectable versions.
// Names without any buildable version still get a header.
func (c *Catalog) Selection() ([]domain.SelectionEntry, error) {
	names, versions, err := c.scan()
	if err != nil {
		return nil, err
	}

	var entries []domain.SelectionEntry
	for _, name := range names {
		entries = append(entries, domain.SelectionEntry{Label: name, Value: name, Disabled: true})
		for _, v := range versions[name] {
			lib, ok := c.load(v)
			if !ok {
				continue
			}
			entries = append(entries, domain.SelectionEntry{
				Label: lib.Manifest.Version,
				Value: lib.Folder,
			})
		}
	}
	return entries, nil
}

// Resolve maps references to libraries. A reference is either name@version or a
// version folder path. Request order is kept and duplicates are dropped.
func (c *Catalog) Resolve(refs []string) ([]domain.Library, error) {
	libs, err := c.Libraries()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Library, len(libs))
	byFolder := make(map[string]domain.Library, len(libs))
	for _, lib := range libs {
		byID[lib.Manifest.ID()] = lib
		byFolder[filepath.Clean(lib.Folder)] = lib
	}

	seen := make(map[string]bool, len(refs))
	resolved := make([]domain.Library, 0, len(refs))
	for _, ref := range refs {
		lib, ok := c.lookup(ref, byID, byFolder)
		if !ok {
			return nil, errors.Join(domain.ErrLibraryNotFound, zerr.With(zerr.New("unknown library reference"), "reference", ref))
		}
		if seen[lib.Manifest.ID()] {
			continue
		}
		seen[lib.Manifest.ID()] = true
		resolved = append(resolved, lib)
	}
	return resolved, nil
}

func (c *Catalog) lookup(ref string, byID, byFolder map[string]domain.Library) (domain.Library, bool) {
	ref = strings.TrimSpace(ref)
	if lib, ok := byFolder[filepath.Clean(ref)]; ok {
		return lib, true
	}
	if abs, err := filepath.Abs(ref); err == nil {
		if lib, ok := byFolder[abs]; ok {
			return lib, true
		}
	}
	if lib, ok := byFolder[filepath.Join(c.cfg.Root, ref)]; ok {
		return lib, true
	}
	if pkg, err := domain.ParsePackage(ref); err == nil {
		lib, ok := byID[pkg.String()]
		return lib, ok
	}
	return domain.Library{}, false
}

// Scaffold creates <source>/<name>/<version>/ with a manifest and an entry module
// re-exporting the package.
func (c *Catalog) Scaffold(pkg domain.Package) (domain.Library, error) {
	m := domain.Manifest{Name: pkg.Name, Version: pkg.Version, Schema: domain.DefaultSchema}

	data, err := manifest.Encode(m)
	if err != nil {
		return domain.Library{}, err
	}
	if _, err := manifest.Decode(data); err != nil {
		return domain.Library{}, errors.Join(domain.ErrInvalidReference, zerr.With(err, "reference", pkg.String()))
	}

	folder := c.cfg.LibraryFolder(pkg.Name, pkg.Version)
	manifestPath := filepath.Join(folder, c.cfg.ManifestFile)
	if isFile(manifestPath) {
		return domain.Library{}, errors.Join(domain.ErrLibraryExists, zerr.With(zerr.New("manifest already present"), "path", manifestPath))
	}

	if err := os.MkdirAll(folder, dirPerm); err != nil {
		return domain.Library{}, zerr.With(zerr.Wrap(err, "failed to create library folder"), "path", folder)
	}
	if err := os.WriteFile(manifestPath, data, filePerm); err != nil {
		return domain.Library{}, zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", manifestPath)
	}

	entryPath := filepath.Join(folder, c.cfg.EntryFile)
	if !isFile(entryPath) {
		if err := os.WriteFile(entryPath, []byte(entryModule(pkg.Name)), filePerm); err != nil {
			return domain.Library{}, zerr.With(zerr.Wrap(err, "failed to write entry module"), "path", entryPath)
		}
	}

	return domain.Library{Folder: folder, Manifest: m}, nil
}

func entryModule(name string) string {
	return "export * from '" + name + "';\nexport { default } from '" + name + "';\n"
}

func (c *Catalog) relative(path string) string {
	if rel, err := filepath.Rel(c.cfg.Root, path); err == nil {
		return rel
	}
	return path
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

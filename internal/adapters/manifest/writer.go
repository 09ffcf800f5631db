package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const filePerm = 0o644

// BundleWriter implements ports.BundleManifestWriter.
type BundleWriter struct {
	fileName   string
	stylesheet string
}

// NewBundleWriter creates a BundleWriter writing fileName and probing for stylesheet.
func NewBundleWriter(fileName, stylesheet string) *BundleWriter {
	return &BundleWriter{fileName: fileName, stylesheet: stylesheet}
}

// Write records m in outDir. hasStylesheet reflects the stylesheet present at call time.
func (w *BundleWriter) Write(m domain.Manifest, outDir string) (domain.BundleManifest, error) {
	info, err := os.Stat(outDir)
	if err != nil {
		return domain.BundleManifest{}, ioError(zerr.Wrap(err, "failed to stat output folder"), outDir)
	}
	if !info.IsDir() {
		return domain.BundleManifest{}, ioError(zerr.New("output path is not a directory"), outDir)
	}

	hasStylesheet := false
	if css, err := os.Stat(filepath.Join(outDir, w.stylesheet)); err == nil && css.Mode().IsRegular() {
		hasStylesheet = true
	}

	bm := domain.NewBundleManifest(m, hasStylesheet)
	data, err := json.MarshalIndent(bm, "", "  ")
	if err != nil {
		return domain.BundleManifest{}, zerr.Wrap(err, "failed to marshal bundle manifest")
	}

	path := filepath.Join(outDir, w.fileName)
	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return domain.BundleManifest{}, ioError(zerr.Wrap(err, "failed to write bundle manifest"), path)
	}

	return bm, nil
}

func ioError(err error, path string) error {
	return errors.Join(domain.ErrIO, zerr.With(err, "path", path))
}

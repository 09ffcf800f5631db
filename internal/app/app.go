// Package app implements the application layer for libpack.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg       *domain.Config
	catalog   ports.Catalog
	prompter  ports.Prompter
	sequencer ports.Sequencer
	store     ports.BuildInfoStore
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	catalog ports.Catalog,
	prompter ports.Prompter,
	sequencer ports.Sequencer,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		cfg:       cfg,
		catalog:   catalog,
		prompter:  prompter,
		sequencer: sequencer,
		store:     store,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// BuildOptions selects what Build packs.
type BuildOptions struct {
	// Refs are name@version references or library folders. Empty means prompt.
	Refs []string
	// All builds every library in the catalog.
	All bool
	// Strict turns per-library failures into an error.
	Strict bool
}

// Build packs the selected libraries one after another and returns the report.
func (a *App) Build(ctx context.Context, opts BuildOptions) (domain.BuildReport, error) {
	libraries, err := a.selectLibraries(ctx, opts)
	if err != nil {
		return domain.BuildReport{}, err
	}
	if len(libraries) == 0 {
		return domain.BuildReport{}, domain.ErrNoLibrariesSelected
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	report, err := a.sequencer.Run(ctx, libraries)
	if err != nil {
		return report, err
	}

	failed := report.Failed()
	a.logger.Info(fmt.Sprintf("built %d of %d libraries", report.Succeeded(), len(libraries)))

	if len(failed) > 0 && (opts.Strict || a.cfg.Strict) {
		names := make([]string, len(failed))
		for i, res := range failed {
			names[i] = res.Library.Manifest.ID()
		}
		return report, errors.Join(domain.ErrTasksFailed, zerr.With(zerr.New("build incomplete"), "failed", names))
	}

	return report, nil
}

func (a *App) selectLibraries(ctx context.Context, opts BuildOptions) ([]domain.Library, error) {
	switch {
	case opts.All:
		libraries, err := a.catalog.Libraries()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to scan libraries")
		}
		return libraries, nil
	case len(opts.Refs) > 0:
		return a.catalog.Resolve(opts.Refs)
	}

	entries, err := a.catalog.Selection()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan libraries")
	}

	folders, err := a.prompter.Select(ctx, entries)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, domain.ErrNoLibrariesSelected
	}

	return a.catalog.Resolve(folders)
}

// LibraryStatus pairs a catalog library with its last recorded build.
type LibraryStatus struct {
	Library domain.Library
	// Build is nil when the library has never been built.
	Build *domain.BuildInfo
}

// List returns every library ordered by name, then by version.
func (a *App) List(_ context.Context) ([]LibraryStatus, error) {
	libraries, err := a.catalog.Libraries()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan libraries")
	}

	statuses := make([]LibraryStatus, 0, len(libraries))
	for _, lib := range libraries {
		info, err := a.store.Get(lib.Manifest.ID())
		if err != nil {
			a.logger.Warn(fmt.Sprintf("failed to read build record of %s: %v", lib.Manifest.ID(), err))
		}
		statuses = append(statuses, LibraryStatus{Library: lib, Build: info})
	}

	slices.SortStableFunc(statuses, func(x, y LibraryStatus) int {
		mx, my := x.Library.Manifest, y.Library.Manifest
		if c := cmp.Compare(mx.Name, my.Name); c != 0 {
			return c
		}
		return compareVersions(mx.Version, my.Version)
	})
	return statuses, nil
}

func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return cmp.Compare(a, b)
	}
	return va.Compare(vb)
}

// Add scaffolds the source folder of a new library version.
func (a *App) Add(_ context.Context, name, version string) (domain.Library, error) {
	lib, err := a.catalog.Scaffold(domain.Package{Name: name, Version: version})
	if err != nil {
		return domain.Library{}, err
	}
	a.logger.Info("created " + lib.Folder)
	return lib, nil
}

// PublishStatus tells whether a built library is ready to be published.
type PublishStatus struct {
	Library domain.Library
	Ready   bool
	Reason  string
}

// Publish checks the dist folder of every built library against its build record.
// Uploading to a registry is not supported yet; the check is what publishing would
// run first.
func (a *App) Publish(_ context.Context) ([]PublishStatus, error) {
	libraries, err := a.catalog.Libraries()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan libraries")
	}

	var statuses []PublishStatus
	for _, lib := range libraries {
		id := lib.Manifest.ID()
		info, err := a.store.Get(id)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read build record"), "library", id)
		}
		if info == nil {
			continue
		}
		statuses = append(statuses, a.verify(lib, info))
	}
	return statuses, nil
}

func (a *App) verify(lib domain.Library, info *domain.BuildInfo) PublishStatus {
	status := PublishStatus{Library: lib}
	m := lib.Manifest

	digest, _, err := a.hasher.HashTree(a.cfg.OutputFolder(m.Name, m.Version))
	switch {
	case err != nil:
		status.Reason = "bundle missing"
	case digest != info.AssetsHash:
		status.Reason = "bundle changed since last build"
	default:
		status.Ready = true
	}
	return status
}

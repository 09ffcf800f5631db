// Package sequencer drains the build queue one library at a time.
package sequencer

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sequencer runs the add, bundle, write and remove cycle for each queued library.
type Sequencer struct {
	cfg       *domain.Config
	reader    ports.ManifestReader
	toggler   ports.DependencyToggler
	bundler   ports.Bundler
	postbuild ports.PostbuildRunner
	writer    ports.BundleManifestWriter
	store     ports.BuildInfoStore
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
	lock      *WorkspaceLock
	now       func() time.Time
}

// New creates a Sequencer.
func New(
	cfg *domain.Config,
	reader ports.ManifestReader,
	toggler ports.DependencyToggler,
	bundler ports.Bundler,
	postbuild ports.PostbuildRunner,
	writer ports.BundleManifestWriter,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Sequencer {
	return &Sequencer{
		cfg:       cfg,
		reader:    reader,
		toggler:   toggler,
		bundler:   bundler,
		postbuild: postbuild,
		writer:    writer,
		store:     store,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		lock:      NewWorkspaceLock(),
		now:       time.Now,
	}
}

// Run builds the libraries in queue order. A failing task is recorded in the report
// and the queue moves on; only cancellation of ctx stops it, in which case the
// report holds the tasks processed so far and the context error is returned.
func (s *Sequencer) Run(ctx context.Context, libraries []domain.Library) (domain.BuildReport, error) {
	queue := slices.Clone(libraries)
	report := domain.BuildReport{Results: make([]domain.TaskResult, 0, len(queue))}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		lib := queue[0]
		queue = queue[1:]

		res, err := s.process(ctx, lib)
		report.Results = append(report.Results, res)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// process runs one task under the workspace lock. The returned error is non-nil
// only when ctx was canceled.
func (s *Sequencer) process(ctx context.Context, lib domain.Library) (domain.TaskResult, error) {
	start := s.now()
	id := lib.Manifest.ID()
	ctx, vertex := s.telemetry.Record(ctx, id)

	res := domain.TaskResult{Library: lib, Status: domain.StatusPending}
	finish := func(err error) domain.TaskResult {
		res.Duration = s.now().Sub(start)
		vertex.Complete(err)
		return res
	}

	release, err := s.lock.Acquire(ctx)
	if err != nil {
		res.Status = domain.StatusFailed
		res.Err = err
		return finish(err), err
	}
	defer release()

	manifest, err := s.reader.Read(filepath.Join(lib.Folder, s.cfg.ManifestFile))
	if err != nil {
		s.fail(&res, domain.StepRead, err)
		return finish(res.Err), nil
	}
	lib.Manifest = manifest
	res.Library = lib
	id = manifest.ID()

	s.logger.Info("building " + id)
	pkgs := manifest.Packages()

	step, buildErr := s.build(ctx, vertex, lib, pkgs, &res)
	if ctx.Err() != nil {
		res.Status = domain.StatusFailed
		res.FailedStep = step
		res.Err = ctx.Err()
		return finish(ctx.Err()), ctx.Err()
	}

	vertex.Log(domain.LogLevelInfo, string(domain.StepRemove))
	removeErr := s.toggler.Apply(ctx, domain.ToggleRemove, pkgs)
	if ctx.Err() != nil {
		res.Status = domain.StatusFailed
		res.FailedStep = domain.StepRemove
		res.Err = ctx.Err()
		return finish(ctx.Err()), ctx.Err()
	}

	switch {
	case buildErr != nil:
		s.fail(&res, step, buildErr)
		if removeErr != nil {
			res.CleanupErr = removeErr
			s.logger.Error(zerr.With(zerr.Wrap(removeErr, "failed to remove build dependencies"), "library", id))
		}
	case removeErr != nil:
		s.fail(&res, domain.StepRemove, removeErr)
		res.CleanupErr = removeErr
	default:
		res.Status = domain.StatusCompleted
		s.logger.Info(fmt.Sprintf("built %s (%d assets)", id, len(res.Assets)))
	}

	return finish(res.Err), nil
}

// build runs the steps between add and remove, stopping at the first failing one.
func (s *Sequencer) build(
	ctx context.Context,
	vertex ports.Vertex,
	lib domain.Library,
	pkgs []domain.Package,
	res *domain.TaskResult,
) (domain.Step, error) {
	m := lib.Manifest
	outDir := s.cfg.OutputFolder(m.Name, m.Version)

	vertex.Log(domain.LogLevelInfo, string(domain.StepAdd))
	if err := s.toggler.Apply(ctx, domain.ToggleAdd, pkgs); err != nil {
		return domain.StepAdd, err
	}

	vertex.Log(domain.LogLevelInfo, string(domain.StepBundle))
	result, err := s.bundler.Bundle(ctx, lib, outDir)
	if err != nil {
		return domain.StepBundle, err
	}
	res.Assets = result.Assets

	vertex.Log(domain.LogLevelInfo, string(domain.StepPostbuild))
	if err := s.postbuild.Run(ctx, lib, outDir); err != nil {
		if ctx.Err() != nil {
			return domain.StepPostbuild, err
		}
		s.logger.Warn(fmt.Sprintf("postbuild of %s failed: %v", m.ID(), err))
	}

	vertex.Log(domain.LogLevelInfo, string(domain.StepManifest))
	if _, err := s.writer.Write(m, outDir); err != nil {
		return domain.StepManifest, err
	}

	vertex.Log(domain.LogLevelInfo, string(domain.StepLedger))
	if err := s.record(lib, outDir); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to record build of %s: %v", m.ID(), err))
	}

	return "", nil
}

// record stores the digests of the manifest and the emitted bundle.
func (s *Sequencer) record(lib domain.Library, outDir string) error {
	manifestHash, err := s.hasher.HashFile(filepath.Join(lib.Folder, s.cfg.ManifestFile))
	if err != nil {
		return err
	}

	assetsHash, assets, err := s.hasher.HashTree(outDir)
	if err != nil {
		return err
	}

	return s.store.Put(domain.BuildInfo{
		Library:      lib.Manifest.ID(),
		ManifestHash: manifestHash,
		AssetsHash:   assetsHash,
		Assets:       assets,
		Timestamp:    s.now(),
	})
}

func (s *Sequencer) fail(res *domain.TaskResult, step domain.Step, err error) {
	res.Status = domain.StatusFailed
	res.FailedStep = step
	res.Err = err
	s.logger.Error(zerr.With(
		zerr.With(zerr.Wrap(err, "build failed"), "library", res.Library.Manifest.ID()),
		"step", string(step),
	))
}

package sequencer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/bundler"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/manifest"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/pnpm"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/postbuild"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the unique identifier for the sequencer Graft node.
const NodeID graft.ID = "engine.sequencer"

func init() {
	graft.Register(graft.Node[*Sequencer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.ReaderNodeID,
			manifest.WriterNodeID,
			pnpm.NodeID,
			bundler.NodeID,
			postbuild.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Sequencer, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.BundleManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	toggler, err := graft.Dep[ports.DependencyToggler](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.PostbuildRunner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, reader, toggler, b, runner, writer, store, hasher, telemetry, log), nil
}

package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

const (
	// ReaderNodeID is the graft node of the manifest reader.
	ReaderNodeID graft.ID = "adapter.manifest_reader"
	// WriterNodeID is the graft node of the bundle manifest writer.
	WriterNodeID graft.ID = "adapter.bundle_manifest_writer"
)

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.BundleManifestWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.BundleManifestWriter, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewBundleWriter(cfg.BundleManifestFile, cfg.StylesheetFile), nil
		},
	})
}

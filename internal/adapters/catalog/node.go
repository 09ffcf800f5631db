package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/adapters/logger"
	"go.trai.ch/libpack/internal/adapters/manifest"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the graft node of the library catalog.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, manifest.ReaderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Catalog, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, reader, log), nil
		},
	})
}

package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the unique identifier for the build info store Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(cfg.StateDir, "state")), nil
		},
	})
}

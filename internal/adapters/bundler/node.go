package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/adapters/fs"
	"go.trai.ch/libpack/internal/adapters/shell"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the graft node of the bundler.
const NodeID graft.ID = "adapter.bundler"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.Bundler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, executor, walker), nil
		},
	})
}

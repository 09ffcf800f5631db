package pnpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/adapters/shell"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the graft node of the dependency toggler.
const NodeID graft.ID = "adapter.pnpm"

func init() {
	graft.Register(graft.Node[ports.DependencyToggler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.DependencyToggler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewToggler(executor, cfg.PackageManager, cfg.Root), nil
		},
	})
}

package postbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/adapters/shell"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the graft node of the postbuild runner.
const NodeID graft.ID = "adapter.postbuild"

func init() {
	graft.Register(graft.Node[ports.PostbuildRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.PostbuildRunner, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, executor), nil
		},
	})
}

package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.LogLevel), nil
		},
	})
}

package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
)

// NodeID is the graft node of the library picker.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Prompter, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(DetectMode(cfg.Prompt), os.Stdin, os.Stderr), nil
		},
	})
}

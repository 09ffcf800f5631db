package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/viper"
	"go.trai.ch/libpack/internal/core/domain"
)

// NodeID is the graft node producing the loaded *domain.Config.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Config, error) {
			wd, err := WorkingDir()
			if err != nil {
				return nil, err
			}
			// The global viper instance carries the flags bound by the CLI.
			return NewLoader(viper.GetViper(), wd).Load()
		},
	})
}

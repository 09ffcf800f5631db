package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/catalog"            //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/prompt"             //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/libpack/internal/engine/sequencer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			prompt.NodeID,
			sequencer.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[ports.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	seq, err := graft.Dep[*sequencer.Sequencer](ctx)
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

	return New(cfg, cat, prompter, seq, store, hasher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}

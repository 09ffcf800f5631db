package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libpack/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// NewApp resolves the dependency graph and returns the application components.
// Configuration is read when the graph runs, so flags must be bound beforehand.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	if err != nil {
		return nil, err
	}
	return components, nil
}

package ports

import (
	"context"

	"go.trai.ch/libpack/internal/core/domain"
)

// DependencyToggler installs and uninstalls pinned packages in the shared workspace.
//
// Every call mutates the workspace-wide dependency tree, so callers must never let
// two toggler windows overlap.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type DependencyToggler interface {
	// Apply adds (pinned, production-only) or removes the given packages and blocks
	// until the package manager exits.
	Apply(ctx context.Context, op domain.ToggleOp, pkgs []domain.Package) error
}

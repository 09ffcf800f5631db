// Package pnpm toggles pinned packages in the workspace through the host package manager.
package pnpm

import (
	"context"
	"strings"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// nodeEnv is exported to the package manager so development-only hooks keep working.
const nodeEnv = "development"

// Toggler implements ports.DependencyToggler by shelling out to the package manager.
type Toggler struct {
	executor ports.Executor
	binary   string
	root     string
}

// NewToggler creates a Toggler running binary (pnpm by default) in the workspace root.
func NewToggler(executor ports.Executor, binary, root string) *Toggler {
	if binary == "" {
		binary = "pnpm"
	}
	return &Toggler{executor: executor, binary: binary, root: root}
}

// Apply runs `<pm> add name@version... --save-prod` or `<pm> remove name...`.
func (t *Toggler) Apply(ctx context.Context, op domain.ToggleOp, pkgs []domain.Package) error {
	if len(pkgs) == 0 {
		return nil
	}

	cmd, err := t.command(op, pkgs)
	if err != nil {
		return err
	}

	if err := t.executor.Execute(ctx, cmd); err != nil {
		if ctx.Err() != nil {
			return err
		}
		pmErr := zerr.Wrap(err, "package manager failed")
		pmErr = zerr.With(pmErr, "op", string(op))
		return zerr.With(pmErr, "packages", strings.Join(refs(pkgs), " "))
	}
	return nil
}

func (t *Toggler) command(op domain.ToggleOp, pkgs []domain.Package) (domain.Command, error) {
	var args []string
	switch op {
	case domain.ToggleAdd:
		args = append([]string{"add"}, refs(pkgs)...)
		args = append(args, "--save-prod")
	case domain.ToggleRemove:
		args = append([]string{"remove"}, domain.PackageNames(pkgs)...)
	default:
		return domain.Command{}, zerr.With(zerr.New("unknown toggle operation"), "op", string(op))
	}

	return domain.Command{
		Name: t.binary,
		Args: args,
		Dir:  t.root,
		Env:  map[string]string{"NODE_ENV": nodeEnv},
	}, nil
}

func refs(pkgs []domain.Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.String()
	}
	return out
}

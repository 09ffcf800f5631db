package pnpm_test

import (
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/adapters/pnpm"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestToggler_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), domain.Command{
		Name: "pnpm",
		Args: []string{"add", "foo@1.2.3", "bar@2.0.0", "--save-prod"},
		Dir:  "/work",
		Env:  map[string]string{"NODE_ENV": "development"},
	}).Return(nil)

	toggler := pnpm.NewToggler(executor, "", "/work")
	err := toggler.Apply(context.Background(), domain.ToggleAdd, []domain.Package{
		{Name: "foo", Version: "1.2.3"},
		{Name: "bar", Version: "2.0.0"},
	})
	require.NoError(t, err)
}

func TestToggler_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), domain.Command{
		Name: "npm",
		Args: []string{"remove", "foo", "bar"},
		Dir:  "/work",
		Env:  map[string]string{"NODE_ENV": "development"},
	}).Return(nil)

	toggler := pnpm.NewToggler(executor, "npm", "/work")
	err := toggler.Apply(context.Background(), domain.ToggleRemove, []domain.Package{
		{Name: "foo", Version: "1.2.3"},
		{Name: "bar", Version: "2.0.0"},
	})
	require.NoError(t, err)
}

func TestToggler_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	toggler := pnpm.NewToggler(executor, "pnpm", "/work")
	require.NoError(t, toggler.Apply(context.Background(), domain.ToggleAdd, nil))
	require.NoError(t, toggler.Apply(context.Background(), domain.ToggleRemove, []domain.Package{}))
}

func TestToggler_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	procErr := errors.Join(domain.ErrProcess, zerr.With(zerr.New("command failed"), "exit_code", 1))
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(procErr)

	toggler := pnpm.NewToggler(executor, "pnpm", "/work")
	err := toggler.Apply(context.Background(), domain.ToggleAdd, []domain.Package{{Name: "foo", Version: "1.2.3"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProcess))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "add", zErr.Metadata()["op"])
	assert.Equal(t, "foo@1.2.3", zErr.Metadata()["packages"])
}

func TestToggler_UnknownOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	toggler := pnpm.NewToggler(mocks.NewMockExecutor(ctrl), "pnpm", "/work")

	err := toggler.Apply(context.Background(), domain.ToggleOp("upgrade"), []domain.Package{{Name: "foo", Version: "1.0.0"}})
	require.Error(t, err)
}

// recordingExecutor plays the package manager against an in-memory dependency set.
type recordingExecutor struct {
	installed map[string]string
	calls     [][]string
}

func (r *recordingExecutor) Execute(_ context.Context, cmd domain.Command) error {
	r.calls = append(r.calls, cmd.Argv())
	switch cmd.Args[0] {
	case "add":
		for _, ref := range cmd.Args[1:] {
			if ref == "--save-prod" {
				continue
			}
			pkg, err := domain.ParsePackage(ref)
			if err != nil {
				return err
			}
			r.installed[pkg.Name] = pkg.Version
		}
	case "remove":
		for _, name := range cmd.Args[1:] {
			delete(r.installed, name)
		}
	}
	return nil
}

func TestToggler_RoundTrip(t *testing.T) {
	rec := &recordingExecutor{installed: map[string]string{"typescript": "5.7.2"}}
	before := maps.Clone(rec.installed)

	m := domain.Manifest{Name: "foo", Version: "1.2.3", Dependencies: map[string]string{"bar": "2.0.0", "baz": "0.1.0"}}
	toggler := pnpm.NewToggler(rec, "pnpm", "/work")

	require.NoError(t, toggler.Apply(context.Background(), domain.ToggleAdd, m.Packages()))
	assert.Equal(t, "1.2.3", rec.installed["foo"])
	assert.Equal(t, "2.0.0", rec.installed["bar"])

	require.NoError(t, toggler.Apply(context.Background(), domain.ToggleRemove, m.Packages()))
	assert.Equal(t, before, rec.installed)

	assert.Equal(t, [][]string{
		{"pnpm", "add", "foo@1.2.3", "bar@2.0.0", "baz@0.1.0", "--save-prod"},
		{"pnpm", "remove", "foo", "bar", "baz"},
	}, rec.calls)
}

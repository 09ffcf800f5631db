package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/adapters/shell"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/libpack/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_TrailingPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_StderrIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("progress").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo progress >&2"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("development").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $NODE_ENV"},
		Env:  map[string]string{"NODE_ENV": "development"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	var got string
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "pwd -P"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, dir) || strings.HasSuffix(dir, got), "pwd %q, dir %q", got, dir)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{Name: "nonexistent-command-xyz123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProcess))
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 42"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProcess))
	assert.Contains(t, err.Error(), "command failed")

	// The sentinel comes first in the join and carries no metadata.
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	branches := joined.Unwrap()
	require.Len(t, branches, 2)
	assert.Same(t, domain.ErrProcess, branches[0])

	var zErr *zerr.Error
	require.True(t, errors.As(branches[1], &zErr))
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh -c exit 42", zErr.Metadata()["command"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(context.Background(), domain.Command{})
	require.NoError(t, err)
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Execute(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_Execute_TeesToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("hello").Times(1)

	var stdout bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&stdout)
	vertex.EXPECT().Stderr().Return(io.Discard)

	executor := shell.NewExecutor(mockLogger)
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	err := executor.Execute(ctx, domain.Command{Name: "sh", Args: []string{"-c", "echo hello"}})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/cmd/libpack/commands"
	"go.trai.ch/libpack/internal/app"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type env struct {
	catalog   *mocks.MockCatalog
	prompter  *mocks.MockPrompter
	sequencer *mocks.MockSequencer
	store     *mocks.MockBuildInfoStore
	hasher    *mocks.MockHasher
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
	cli       *commands.CLI
	out       *bytes.Buffer
}

func newEnv(t *testing.T, args ...string) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		catalog:   mocks.NewMockCatalog(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		sequencer: mocks.NewMockSequencer(ctrl),
		store:     mocks.NewMockBuildInfoStore(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		out:       &bytes.Buffer{},
	}
	e.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	cfg := &domain.Config{SourceDir: "/ws/libs", DistDir: "/ws/dist"}
	a := app.New(cfg, e.catalog, e.prompter, e.sequencer, e.store, e.hasher, e.telemetry, e.logger)

	e.cli = commands.New(func(context.Context) (*app.Components, error) {
		return app.NewComponents(a, e.logger), nil
	})
	e.cli.SetOutput(e.out)
	e.cli.SetArgs(args)
	return e
}

func foo() domain.Library {
	return domain.Library{
		Folder:   "/ws/libs/foo/1.2.3",
		Manifest: domain.Manifest{Name: "foo", Version: "1.2.3", Schema: domain.DefaultSchema},
	}
}

func TestBuild_Refs(t *testing.T) {
	e := newEnv(t, "build", "foo@1.2.3")

	e.catalog.EXPECT().Resolve([]string{"foo@1.2.3"}).Return([]domain.Library{foo()}, nil)
	e.sequencer.EXPECT().Run(gomock.Any(), []domain.Library{foo()}).Return(domain.BuildReport{
		Results: []domain.TaskResult{{
			Library: foo(),
			Status:  domain.StatusCompleted,
			Assets:  []string{"index.js", "index.js.map"},
		}},
	}, nil)
	e.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, e.cli.Execute(context.Background()))
	assert.Contains(t, e.out.String(), "foo@1.2.3")
	assert.Contains(t, e.out.String(), "2 assets")
	assert.NotNil(t, e.cli.Components())
}

func TestBuild_ReportsFailures(t *testing.T) {
	e := newEnv(t, "build", "--all")

	e.catalog.EXPECT().Libraries().Return([]domain.Library{foo()}, nil)
	e.sequencer.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.BuildReport{
		Results: []domain.TaskResult{{
			Library:    foo(),
			Status:     domain.StatusFailed,
			FailedStep: domain.StepBundle,
			Err:        errors.New("exit status 2\nmore detail"),
		}},
	}, nil)
	e.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, e.cli.Execute(context.Background()))
	assert.Contains(t, e.out.String(), "bundle: exit status 2")
	assert.NotContains(t, e.out.String(), "more detail")
}

func TestBuild_Strict(t *testing.T) {
	e := newEnv(t, "build", "--strict", "foo@1.2.3")

	e.catalog.EXPECT().Resolve(gomock.Any()).Return([]domain.Library{foo()}, nil)
	e.sequencer.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.BuildReport{
		Results: []domain.TaskResult{{Library: foo(), Status: domain.StatusFailed, FailedStep: domain.StepAdd}},
	}, nil)
	e.telemetry.EXPECT().Close().Return(nil)

	err := e.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrTasksFailed)
	assert.Equal(t, commands.ExitFailure, commands.ExitCode(err))
}

func TestBuild_AllWithRefs(t *testing.T) {
	e := newEnv(t, "build", "--all", "foo@1.2.3")

	err := e.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Nil(t, e.cli.Components())
}

func TestBuild_PromptAborted(t *testing.T) {
	e := newEnv(t, "build")

	e.catalog.EXPECT().Selection().Return(nil, nil)
	e.prompter.EXPECT().Select(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPromptAborted)

	err := e.cli.Execute(context.Background())
	assert.Equal(t, commands.ExitInterrupted, commands.ExitCode(err))
}

func TestList(t *testing.T) {
	e := newEnv(t, "list")

	bar := domain.Library{Folder: "/ws/libs/bar/2.0.0", Manifest: domain.Manifest{Name: "bar", Version: "2.0.0"}}
	e.catalog.EXPECT().Libraries().Return([]domain.Library{foo(), bar}, nil)
	e.store.EXPECT().Get("foo@1.2.3").Return(&domain.BuildInfo{
		Library:    "foo@1.2.3",
		AssetsHash: "00000000deadbeef",
		Timestamp:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, nil)
	e.store.EXPECT().Get("bar@2.0.0").Return(nil, nil)

	require.NoError(t, e.cli.Execute(context.Background()))
	out := e.out.String()
	assert.Contains(t, out, "deadbeef")
	assert.Contains(t, out, "never built")
	assert.Less(t, bytes.Index(e.out.Bytes(), []byte("bar")), bytes.Index(e.out.Bytes(), []byte("foo")))
}

func TestList_Empty(t *testing.T) {
	e := newEnv(t, "list")

	e.catalog.EXPECT().Libraries().Return(nil, nil)

	require.NoError(t, e.cli.Execute(context.Background()))
	assert.Contains(t, e.out.String(), "no libraries found")
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "separate arguments", args: []string{"add", "foo", "1.2.3"}},
		{name: "reference", args: []string{"add", "foo@1.2.3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, tt.args...)

			e.catalog.EXPECT().Scaffold(domain.Package{Name: "foo", Version: "1.2.3"}).Return(foo(), nil)

			require.NoError(t, e.cli.Execute(context.Background()))
			assert.Contains(t, e.out.String(), "/ws/libs/foo/1.2.3")
		})
	}
}

func TestAdd_InvalidReference(t *testing.T) {
	e := newEnv(t, "add", "foo")

	err := e.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestPublish(t *testing.T) {
	e := newEnv(t, "publish")

	e.catalog.EXPECT().Libraries().Return([]domain.Library{foo()}, nil)
	e.store.EXPECT().Get("foo@1.2.3").Return(&domain.BuildInfo{AssetsHash: "h"}, nil)
	e.hasher.EXPECT().HashTree(gomock.Any()).Return("h", nil, nil)

	require.NoError(t, e.cli.Execute(context.Background()))
	assert.Contains(t, e.out.String(), "foo@1.2.3")
	assert.Contains(t, e.out.String(), "not supported yet")
}

func TestVersion(t *testing.T) {
	e := newEnv(t, "version")

	require.NoError(t, e.cli.Execute(context.Background()))
	assert.Contains(t, e.out.String(), "libpack version")
	assert.Nil(t, e.cli.Components())
}

func TestFactoryError(t *testing.T) {
	cli := commands.New(func(context.Context) (*app.Components, error) {
		return nil, domain.ErrInvalidConfig
	})
	cli.SetOutput(&bytes.Buffer{})
	cli.SetArgs([]string{"list"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Nil(t, cli.Components())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, commands.ExitOK, commands.ExitCode(nil))
	assert.Equal(t, commands.ExitInterrupted, commands.ExitCode(context.Canceled))
	assert.Equal(t, commands.ExitInterrupted, commands.ExitCode(errors.Join(domain.ErrPromptAborted, errors.New("ctrl+c"))))
	assert.Equal(t, commands.ExitFailure, commands.ExitCode(domain.ErrNoLibrariesSelected))
	assert.Equal(t, commands.ExitFailure, commands.ExitCode(errors.New("boom")))
}

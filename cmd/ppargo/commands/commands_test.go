package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppargo/cmd/ppargo/commands"
	"go.trai.ch/ppargo/internal/app"
	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader   *mocks.MockManifestLoader
	builder  *mocks.MockBuilder
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func newCLI(t *testing.T) (*commands.CLI, cliMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := cliMocks{
		loader:   mocks.NewMockManifestLoader(ctrl),
		builder:  mocks.NewMockBuilder(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.loader, m.builder, m.executor, m.logger).
		WithStreams(bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})
	return commands.New(a), m
}

func TestBuild_Flags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected domain.BuildOptions
	}{
		{
			name:     "Defaults",
			args:     []string{"build"},
			expected: domain.BuildOptions{Profile: domain.Debug},
		},
		{
			name:     "Release Short",
			args:     []string{"build", "-r", "-j", "4"},
			expected: domain.BuildOptions{Profile: domain.Release, Jobs: 4},
		},
		{
			name:     "Long Flags",
			args:     []string{"build", "--release", "--jobs=2", "--compile-commands"},
			expected: domain.BuildOptions{Profile: domain.Release, Jobs: 2, CompileCommands: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, m := newCLI(t)
			manifest := &domain.Manifest{Root: "/work"}

			m.loader.EXPECT().Load(".").Return(manifest, nil)
			m.builder.EXPECT().Build(gomock.Any(), manifest, tt.expected).
				Return(&domain.BuildReport{Artifact: "/work/target/debug/app"}, nil)

			cli.SetArgs(tt.args)
			require.NoError(t, cli.Execute(context.Background()))
		})
	}
}

func TestBuild_NegativeJobs(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"build", "--jobs=-1"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --jobs")
}

func TestBuild_Error(t *testing.T) {
	cli, m := newCLI(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Manifest{}, nil)
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrLinkFailed)

	cli.SetArgs([]string{"build"})
	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrLinkFailed)
}

func TestRun_ForwardsArgs(t *testing.T) {
	cli, m := newCLI(t)
	artifact := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.WriteFile(artifact, []byte("binary"), 0o600))

	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Manifest{}, nil)
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any(), domain.BuildOptions{Profile: domain.Release}).
		Return(&domain.BuildReport{Artifact: artifact}, nil)
	m.logger.EXPECT().Info(gomock.Any())
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) ([]byte, error) {
			assert.Equal(t, artifact, inv.Path)
			assert.Equal(t, []string{"--verbose", "input.txt"}, inv.Args)
			return nil, nil
		})

	cli.SetArgs([]string{"run", "-r", "--", "--verbose", "input.txt"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "target", "release"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "target", "debug"), 0o750))

	cli, m := newCLI(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Manifest{Root: root}, nil)
	m.logger.EXPECT().Info(gomock.Any())

	cli.SetArgs([]string{"clean", "--release"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.NoDirExists(t, filepath.Join(root, "target", "release"))
	assert.DirExists(t, filepath.Join(root, "target", "debug"))
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"--help"})

	// Cobra handles help automatically
	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_UnknownCommand(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"install", "fmt"})

	require.Error(t, cli.Execute(context.Background()))
}

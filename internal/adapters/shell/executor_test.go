package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppargo/internal/adapters/shell"
	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/zerr"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecutor_Execute_CapturesStderr(t *testing.T) {
	skipOnWindows(t)

	executor := shell.NewExecutor()
	stderr, err := executor.Execute(context.Background(), domain.Invocation{
		Path: "sh",
		Args: []string{"-c", "echo warning: unused variable >&2"},
		Dir:  t.TempDir(),
	})

	require.NoError(t, err)
	assert.Equal(t, "warning: unused variable\n", string(stderr))
}

func TestExecutor_Execute_TeesStderrAndStdout(t *testing.T) {
	skipOnWindows(t)

	var out, errOut bytes.Buffer
	executor := shell.NewExecutor()
	stderr, err := executor.Execute(context.Background(), domain.Invocation{
		Path:   "sh",
		Args:   []string{"-c", "echo hello; echo oops >&2"},
		Stdout: &out,
		Stderr: &errOut,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
	assert.Equal(t, "oops\n", string(stderr))
}

func TestExecutor_Execute_Stdin(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	executor := shell.NewExecutor()
	_, err := executor.Execute(context.Background(), domain.Invocation{
		Path:   "cat",
		Stdin:  strings.NewReader("piped"),
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, "piped", out.String())
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	executor := shell.NewExecutor()
	_, err := executor.Execute(context.Background(), domain.Invocation{
		Path: "sh",
		Args: []string{"-c", "touch marker"},
		Dir:  dir,
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "marker"))
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	skipOnWindows(t)

	executor := shell.NewExecutor()
	stderr, err := executor.Execute(context.Background(), domain.Invocation{
		Path: "sh",
		Args: []string{"-c", "echo 'main.cpp:3:1: error: boom' >&2; exit 42"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Equal(t, "main.cpp:3:1: error: boom\n", string(stderr))

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh", zErr.Metadata()["command"])
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	executor := shell.NewExecutor()
	_, err := executor.Execute(context.Background(), domain.Invocation{
		Path: "nonexistent-command-xyz123",
		Dir:  t.TempDir(),
	})

	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	_, err := shell.NewExecutor().Execute(context.Background(), domain.Invocation{})
	require.Error(t, err)
}

func TestExecutor_Execute_ResolvesFromProvidedPath(t *testing.T) {
	skipOnWindows(t)

	binDir := t.TempDir()
	script := filepath.Join(binDir, "fakecc")
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho fake-compiler >&2\n"), 0o755))

	executor := shell.NewExecutorWithEnv([]string{"PATH=" + binDir + ":/usr/bin:/bin"})
	stderr, err := executor.Execute(context.Background(), domain.Invocation{Path: "fakecc"})

	require.NoError(t, err)
	assert.Equal(t, "fake-compiler\n", string(stderr))
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shell.NewExecutor().Execute(ctx, domain.Invocation{
		Path: "sh",
		Args: []string{"-c", "sleep 5"},
	})
	require.Error(t, err)
}

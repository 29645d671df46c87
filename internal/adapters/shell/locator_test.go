package shell_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppargo/internal/adapters/shell"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // test binary must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestPathLocator_Locate(t *testing.T) {
	skipOnWindows(t)

	first := t.TempDir()
	second := t.TempDir()
	writeExecutable(t, second, "clang++")
	shadowed := writeExecutable(t, first, "g++")
	writeExecutable(t, second, "g++")

	locator := shell.NewPathLocatorWithEnv([]string{
		"HOME=/nowhere",
		"PATH=" + first + string(os.PathListSeparator) + second,
	})

	got, err := locator.Locate("clang++")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "clang++"), got)

	got, err = locator.Locate("g++")
	require.NoError(t, err)
	assert.Equal(t, shadowed, got, "first PATH entry wins")
}

func TestPathLocator_Locate_NotFound(t *testing.T) {
	locator := shell.NewPathLocatorWithEnv([]string{"PATH=" + t.TempDir()})

	_, err := locator.Locate("definitely-not-a-compiler")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestPathLocator_Locate_EmptyPath(t *testing.T) {
	locator := shell.NewPathLocatorWithEnv(nil)

	_, err := locator.Locate("cc")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestPathLocator_Locate_SkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cc"), []byte("text"), 0o600))

	_, err := shell.NewPathLocatorWithEnv([]string{"PATH=" + dir}).Locate("cc")
	require.Error(t, err)
}

func TestPathLocator_Locate_ExplicitPath(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	compiler := writeExecutable(t, dir, "my-cc")

	got, err := shell.NewPathLocatorWithEnv(nil).Locate(compiler)
	require.NoError(t, err)
	assert.Equal(t, compiler, got)

	_, err = shell.NewPathLocatorWithEnv(nil).Locate(filepath.Join(dir, "missing-cc"))
	require.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppargo/internal/adapters/config"
	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ManifestFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
package:
  name: hello
  version: 0.1.0
  edition: cpp20
toolchain:
  compiler: g++
  linker: lld
dependencies:
  fmt: "10.2.1"
  boost:
    version: "1.84"
    libs: [boost_system, boost_filesystem]
features:
  package_manager: VCPKG
  vcpkg_root: vcpkg_installed
build:
  compile_commands: true
`
	tmpDir := t.TempDir()
	path := writeManifest(t, tmpDir, content)

	m, err := config.Load(path)
	require.NoError(t, err)

	absDir, err := filepath.Abs(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, absDir, m.Root)
	assert.Equal(t, domain.PackageInfo{Name: "hello", Version: "0.1.0", Edition: "cpp20"}, m.Package)
	assert.Equal(t, domain.ToolchainSettings{Compiler: "g++", Linker: "lld"}, m.Toolchain)
	assert.Equal(t, domain.Features{PackageManager: "vcpkg", VcpkgRoot: "vcpkg_installed"}, m.Features)
	assert.True(t, m.Build.CompileCommands)
	assert.Equal(t, []domain.Dependency{
		{Name: "boost", Version: "1.84", Libs: []string{"boost_system", "boost_filesystem"}},
		{Name: "fmt", Version: "10.2.1"},
	}, m.Dependencies)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "package:\n  name: tiny\n")

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultEdition, m.Package.Edition)
	assert.Equal(t, domain.DefaultCompiler, m.Toolchain.Compiler)
	assert.Empty(t, m.Toolchain.Linker)
	assert.Equal(t, domain.PackageManagerNone, m.Features.PackageManager)
	assert.False(t, m.Build.CompileCommands)
	assert.Empty(t, m.Dependencies)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := config.Load("non-existent-file.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read manifest")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "package:\n  name: [unclosed\n")

		_, err := config.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("Unknown Field", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "package:\n  name: x\n  edtion: cpp20\n")

		_, err := config.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})

	t.Run("Missing Name", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "package:\n  version: 1.0.0\n")

		_, err := config.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
		assert.Contains(t, err.Error(), "package.name is required")
	})

	t.Run("Empty File", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "")

		_, err := config.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})

	t.Run("Name With Separator", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "package:\n  name: ../evil\n")

		_, err := config.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, "../evil", zErr.Metadata()["package_name"])
	})
}

func TestFileManifestLoader_DiscoversParent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package:\n  name: app\n")
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	m, err := config.NewLoader().Load(nested)
	require.NoError(t, err)

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, absRoot, m.Root)
	assert.Equal(t, "app", m.Package.Name)
}

func TestFileManifestLoader_NearestWins(t *testing.T) {
	outer := t.TempDir()
	writeManifest(t, outer, "package:\n  name: outer\n")
	inner := filepath.Join(outer, "inner")
	require.NoError(t, os.MkdirAll(inner, 0o750))
	writeManifest(t, inner, "package:\n  name: inner\n")

	m, err := config.NewLoader().Load(inner)
	require.NoError(t, err)
	assert.Equal(t, "inner", m.Package.Name)
}

func TestFileManifestLoader_NotFound(t *testing.T) {
	loader := &config.FileManifestLoader{Filename: "definitely-absent-manifest.yaml"}

	_, err := loader.Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
	assert.True(t, domain.IsConfigError(err))
}

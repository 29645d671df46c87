package toolchain_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports/mocks"
	"go.trai.ch/ppargo/internal/engine/toolchain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestStandardFlag(t *testing.T) {
	tests := map[string]string{
		"cpp17":    "-std=c++17",
		"cpp20":    "-std=c++20",
		"cpp23":    "-std=c++23",
		"cpp26":    "-std=c++26",
		"":         "-std=c++17",
		"cpp98":    "-std=c++17",
		"rust2021": "-std=c++17",
	}
	for edition, want := range tests {
		assert.Equal(t, want, toolchain.StandardFlag(edition), edition)
	}
}

func TestProfileFlags(t *testing.T) {
	compile, link := toolchain.ProfileFlags(domain.Debug, "linux")
	assert.Equal(t, []string{"-O0", "-g"}, compile)
	assert.Empty(t, link)

	compile, link = toolchain.ProfileFlags(domain.Release, "linux")
	assert.Equal(t, []string{"-O3"}, compile)
	assert.Equal(t, []string{"-s"}, link, "stripping happens at link time")

	_, link = toolchain.ProfileFlags(domain.Release, "windows")
	assert.Empty(t, link)
}

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockToolLocator(ctrl)
	locator.EXPECT().Locate("g++").Return("/usr/bin/g++", nil)

	m := &domain.Manifest{
		Package:   domain.PackageInfo{Name: "app", Edition: "cpp23"},
		Toolchain: domain.ToolchainSettings{Compiler: "g++", Linker: "mold"},
	}

	tc, err := toolchain.NewResolverFor(locator, "linux").Resolve(m, domain.Release)
	require.NoError(t, err)

	assert.Equal(t, &domain.ToolchainConfig{
		Compiler:          "/usr/bin/g++",
		StandardFlag:      "-std=c++23",
		OptimizationFlags: []string{"-O3"},
		WarningFlags:      []string{"-Wall", "-Wextra"},
		Linker:            "mold",
		LinkFlags:         []string{"-s"},
	}, tc)
}

func TestResolver_Resolve_DefaultCompiler(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockToolLocator(ctrl)
	locator.EXPECT().Locate(domain.DefaultCompiler).Return("/usr/bin/clang++", nil)

	tc, err := toolchain.NewResolverFor(locator, "darwin").Resolve(&domain.Manifest{}, domain.Debug)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/clang++", tc.Compiler)
	assert.Equal(t, toolchain.DefaultStandardFlag, tc.StandardFlag)
}

func TestResolver_Resolve_CompilerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockToolLocator(ctrl)
	locator.EXPECT().Locate("icpx").Return("", exec.ErrNotFound)

	m := &domain.Manifest{Toolchain: domain.ToolchainSettings{Compiler: "icpx"}}
	_, err := toolchain.NewResolverFor(locator, "linux").Resolve(m, domain.Debug)

	require.ErrorIs(t, err, domain.ErrCompilerNotFound)
	assert.True(t, domain.IsConfigError(err))
	assert.Contains(t, err.Error(), "icpx")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "icpx", zErr.Metadata()["compiler"])
}

func TestResolver_WarningFlagsNotShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockToolLocator(ctrl)
	locator.EXPECT().Locate(gomock.Any()).Return("/bin/cc", nil).Times(2)
	resolver := toolchain.NewResolverFor(locator, "linux")

	first, err := resolver.Resolve(&domain.Manifest{}, domain.Debug)
	require.NoError(t, err)
	first.WarningFlags[0] = "-Werror"

	second, err := resolver.Resolve(&domain.Manifest{}, domain.Debug)
	require.NoError(t, err)
	assert.Equal(t, "-Wall", second.WarningFlags[0])
}

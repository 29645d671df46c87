// Package toolchain resolves the compiler and derives its flag set.
package toolchain

import (
	"runtime"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultStandardFlag is used for editions missing from the table.
const DefaultStandardFlag = "-std=c++17"

var standardFlags = map[string]string{
	"cpp17": "-std=c++17",
	"cpp20": "-std=c++20",
	"cpp23": "-std=c++23",
	"cpp26": "-std=c++26",
}

// WarningFlags are enabled for every unit.
var WarningFlags = []string{"-Wall", "-Wextra"}

// StandardFlag maps an edition identifier to the compiler's standard flag.
// Unknown editions fall back to the oldest supported standard.
func StandardFlag(edition string) string {
	if flag, ok := standardFlags[edition]; ok {
		return flag
	}
	return DefaultStandardFlag
}

// ProfileFlags returns the compile and link flags of a profile on goos.
func ProfileFlags(profile domain.Profile, goos string) (compile, link []string) {
	if profile == domain.Release {
		if goos == "windows" {
			return []string{"-O3"}, nil
		}
		return []string{"-O3"}, []string{"-s"}
	}
	return []string{"-O0", "-g"}, nil
}

// Resolver locates the compiler and assembles the ToolchainConfig.
type Resolver struct {
	locator ports.ToolLocator
	goos    string
}

// NewResolver creates a Resolver for the host OS.
func NewResolver(locator ports.ToolLocator) *Resolver {
	return NewResolverFor(locator, runtime.GOOS)
}

// NewResolverFor creates a Resolver for an explicit target OS.
func NewResolverFor(locator ports.ToolLocator, goos string) *Resolver {
	return &Resolver{locator: locator, goos: goos}
}

// GOOS returns the target OS the resolver derives flags for.
func (r *Resolver) GOOS() string {
	return r.goos
}

// Resolve builds the immutable toolchain configuration for one build.
// It touches nothing on disk beyond the PATH lookup.
func (r *Resolver) Resolve(m *domain.Manifest, profile domain.Profile) (*domain.ToolchainConfig, error) {
	compiler := m.Toolchain.Compiler
	if compiler == "" {
		compiler = domain.DefaultCompiler
	}

	path, err := r.locator.Locate(compiler)
	if err != nil {
		notFound := zerr.With(zerr.Wrap(domain.ErrCompilerNotFound, compiler), "compiler", compiler)
		return nil, zerr.With(notFound, "reason", err.Error())
	}

	compile, link := ProfileFlags(profile, r.goos)

	return &domain.ToolchainConfig{
		Compiler:          path,
		StandardFlag:      StandardFlag(m.Package.Edition),
		OptimizationFlags: compile,
		WarningFlags:      append([]string(nil), WarningFlags...),
		Linker:            m.Toolchain.Linker,
		LinkFlags:         link,
	}, nil
}

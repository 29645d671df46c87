// Package builder composes the build stages into a single build operation.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/ppargo/internal/engine/linker"
	"go.trai.ch/ppargo/internal/engine/scheduler"
	"go.trai.ch/ppargo/internal/engine/staleness"
	"go.trai.ch/ppargo/internal/engine/toolchain"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Builder)(nil)

// Deps are the collaborators of a Builder.
type Deps struct {
	Toolchain *toolchain.Resolver
	Packages  ports.PackageBackends
	Collector ports.SourceCollector
	Detector  *staleness.Detector
	Scheduler *scheduler.Scheduler
	Linker    *linker.Linker
	Hasher    ports.Hasher
	CompDB    ports.CompilationDatabase
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Builder is the build engine.
type Builder struct {
	deps Deps
}

// New creates a new Builder.
func New(deps Deps) *Builder {
	return &Builder{deps: deps}
}

// Build resolves the toolchain and package paths, compiles every stale unit
// and links the artifact. Configuration errors surface before anything is
// written to disk.
func (b *Builder) Build(ctx context.Context, m *domain.Manifest, opts domain.BuildOptions) (*domain.BuildReport, error) {
	start := time.Now()

	bc, err := b.prepare(ctx, m, opts)
	if err != nil {
		return nil, err
	}

	units, err := b.deps.Collector.Collect(bc.Root)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrEmptySourceSet, m.Package.Name),
			"source_dir", filepath.Join(bc.Root, domain.SourceDirName))
	}
	if err := checkCollisions(bc, units); err != nil {
		return nil, err
	}

	objRoot := bc.ObjectRoot()
	if err := os.MkdirAll(objRoot, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create object directory"), "path", objRoot)
	}

	journal, err := b.deps.Telemetry.Journal(bc.JournalPath())
	if err != nil {
		return nil, err
	}
	defer func() { _ = journal.Close() }()

	verdicts := make([]domain.Verdict, 0, len(units))
	for _, unit := range units {
		v, err := b.deps.Detector.Detect(bc, unit)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, v)
	}

	if opts.CompileCommands || m.Build.CompileCommands {
		path := filepath.Join(bc.Root, domain.CompileCommandsFileName)
		if err := b.deps.CompDB.Write(path, CompileCommands(bc, verdicts)); err != nil {
			return nil, err
		}
	}

	result, err := b.deps.Scheduler.Compile(ctx, bc, verdicts)
	if err != nil {
		return nil, err
	}

	artifact, err := b.deps.Linker.Link(ctx, bc, result.Objects)
	if err != nil {
		return nil, err
	}

	report := &domain.BuildReport{
		Artifact: artifact,
		Profile:  bc.Profile,
		Compiled: result.Compiled,
		Reused:   result.Reused,
		Duration: time.Since(start),
	}
	b.deps.Logger.Info(fmt.Sprintf("Finished %s [%s] in %s (%d compiled, %d up to date)",
		m.Package.Name, bc.Profile, report.Duration.Round(time.Millisecond),
		len(report.Compiled), len(report.Reused)))
	return report, nil
}

// prepare builds the immutable context of one build.
func (b *Builder) prepare(ctx context.Context, m *domain.Manifest, opts domain.BuildOptions) (*domain.BuildContext, error) {
	tc, err := b.deps.Toolchain.Resolve(m, opts.Profile)
	if err != nil {
		return nil, err
	}

	backend, err := b.deps.Packages.Select(m)
	if err != nil {
		return nil, err
	}
	pkgs, err := backend.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	var includeDirs []string
	projectInclude := filepath.Join(m.Root, domain.IncludeDirName)
	if info, err := os.Stat(projectInclude); err == nil && info.IsDir() {
		includeDirs = append(includeDirs, projectInclude)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat include directory"), "path", projectInclude)
	}
	includeDirs = append(includeDirs, pkgs.IncludeDirs...)

	parts := append([]string{tc.Compiler}, tc.CompileFlags(includeDirs)...)

	return &domain.BuildContext{
		Root:        m.Root,
		Manifest:    m,
		Profile:     opts.Profile,
		GOOS:        b.deps.Toolchain.GOOS(),
		Toolchain:   tc,
		Packages:    pkgs,
		IncludeDirs: includeDirs,
		Jobs:        opts.Jobs,
		Fingerprint: b.deps.Hasher.HashStrings(parts...),
	}, nil
}

func checkCollisions(bc *domain.BuildContext, units []domain.CompilationUnit) error {
	objRoot := bc.ObjectRoot()
	owners := make(map[string]string, len(units))
	for _, unit := range units {
		obj := unit.ObjectPath(objRoot)
		if prev, ok := owners[obj]; ok {
			return zerr.With(zerr.With(
				zerr.Wrap(domain.ErrObjectPathCollision, obj),
				"first", prev),
				"second", unit.RelativePath)
		}
		owners[obj] = unit.RelativePath
	}
	return nil
}

// CompileCommands renders one compilation database record per unit, in collection order.
func CompileCommands(bc *domain.BuildContext, verdicts []domain.Verdict) []domain.CompileCommand {
	entries := make([]domain.CompileCommand, 0, len(verdicts))
	for _, v := range verdicts {
		args := bc.Toolchain.CompileArgs(v.Unit.SourcePath, v.ObjectPath, v.DepfilePath, bc.IncludeDirs)
		entries = append(entries, domain.CompileCommand{
			Directory: bc.Root,
			Command:   shellquote.Join(append([]string{bc.Toolchain.Compiler}, args...)...),
			File:      v.Unit.SourcePath,
		})
	}
	return entries
}

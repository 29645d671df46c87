// Package app implements the application layer for ppargo.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ManifestLoader
	builder  ports.Builder
	executor ports.Executor
	logger   ports.Logger

	workDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, builder ports.Builder, executor ports.Executor, logger ports.Logger) *App {
	return &App{
		loader:   loader,
		builder:  builder,
		executor: executor,
		logger:   logger,
		workDir:  ".",
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithWorkDir sets the directory the manifest search starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithStreams sets the standard streams handed to programs started by Run.
func (a *App) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// BuildOptions configures a build.
type BuildOptions struct {
	Release         bool
	Jobs            int
	CompileCommands bool
}

func (o BuildOptions) domain() domain.BuildOptions {
	return domain.BuildOptions{
		Profile:         domain.ProfileFromRelease(o.Release),
		Jobs:            o.Jobs,
		CompileCommands: o.CompileCommands,
	}
}

// RunOptions configures a build followed by executing the artifact.
type RunOptions struct {
	BuildOptions
	// Args are passed to the program unchanged.
	Args []string
}

// CleanOptions configures which outputs are removed.
type CleanOptions struct {
	// Release removes only the release profile. Otherwise the whole target directory is removed.
	Release bool
}

// Build builds the project containing the working directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.BuildReport, error) {
	m, err := a.loader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return a.builder.Build(ctx, m, opts.domain())
}

// Run builds the project and executes the artifact with the App's streams.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	report, err := a.Build(ctx, opts.BuildOptions)
	if err != nil {
		return err
	}

	if _, err := os.Stat(report.Artifact); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, "artifact missing"), "artifact", report.Artifact)
	}

	a.logger.Info(fmt.Sprintf("Running %s", report.Artifact))
	_, err = a.executor.Execute(ctx, domain.Invocation{
		Path:   report.Artifact,
		Args:   opts.Args,
		Dir:    a.workDir,
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	if err != nil {
		failed := zerr.With(zerr.Wrap(err, "program failed"), "artifact", report.Artifact)
		if code, ok := domain.CommandExitCode(err); ok {
			failed = zerr.With(failed, domain.ProgramExitCodeKey, code)
		}
		return failed
	}
	return nil
}

// Clean removes build outputs of the project containing the working directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	m, err := a.loader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	target := domain.TargetDir(m.Root)
	if opts.Release {
		target = domain.ProfileDir(m.Root, domain.Release)
	}

	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build outputs"), "path", target)
	}
	a.logger.Info(fmt.Sprintf("Removed %s", target))
	return nil
}

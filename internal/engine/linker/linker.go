// Package linker produces the final executable from compiled objects.
package linker

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Linker invokes the compiler driver once per build to link the artifact.
type Linker struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewLinker creates a new Linker.
func NewLinker(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Linker {
	return &Linker{executor: executor, telemetry: telemetry, logger: logger}
}

// Spec assembles the link inputs for a build. Objects keep their given order.
func Spec(bc *domain.BuildContext, objects []string) domain.LinkSpec {
	return domain.LinkSpec{
		ObjectFiles:        objects,
		LibrarySearchPaths: bc.Packages.LibDirs,
		LinkLibraryNames:   bc.Packages.LinkLibs,
		OutputPath:         bc.BinaryPath(),
	}
}

// Link runs the linker and returns the artifact path. Linking happens on
// every call whether or not any object changed. After a failure the
// artifact is in an undefined state.
func (l *Linker) Link(ctx context.Context, bc *domain.BuildContext, objects []string) (string, error) {
	spec := Spec(bc, objects)

	if err := os.MkdirAll(bc.ProfileDir(), domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create profile directory"), "path", bc.ProfileDir())
	}

	vertexCtx, vertex := l.telemetry.Record(ctx, "link "+bc.Manifest.Package.Name)
	l.logger.Info(fmt.Sprintf("Linking %s (%d objects)", bc.Manifest.Package.Name, len(objects)))

	stderr, err := l.executor.Execute(vertexCtx, domain.Invocation{
		Path:   bc.Toolchain.Compiler,
		Args:   bc.Toolchain.LinkArgs(spec),
		Dir:    bc.Root,
		Stdout: vertex.Stdout(),
		Stderr: vertex.Stderr(),
	})
	vertex.Complete(err)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.With(
			zerr.Wrap(domain.ErrLinkFailed, spec.OutputPath),
			"output", spec.OutputPath),
			"stderr", string(stderr)),
			"reason", err.Error())
	}

	if len(stderr) > 0 {
		l.logger.Warn(string(stderr))
	}
	return spec.OutputPath, nil
}

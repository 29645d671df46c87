// Package shell provides process execution and executable lookup.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	environ func() []string
}

// NewExecutor creates a new Executor that inherits the process environment.
func NewExecutor() *Executor {
	return &Executor{environ: os.Environ}
}

// Execute runs the invocation and returns its captured stderr.
// Bare command names are resolved against PATH; absolute paths are used as is.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) ([]byte, error) {
	if inv.Path == "" {
		return nil, zerr.New("empty command")
	}

	env := e.environ()
	executable := inv.Path
	if !filepath.IsAbs(executable) && filepath.Base(executable) == executable {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // compiler and linker come from the manifest

	// Keep the name the user configured in argv[0].
	cmd.Args[0] = inv.Path
	cmd.Dir = inv.Dir
	cmd.Env = env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout

	var stderr bytes.Buffer
	if inv.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, inv.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "command", inv.Path)
		return stderr.Bytes(), zerr.With(err, "exit_code", exitCode)
	}

	return stderr.Bytes(), nil
}

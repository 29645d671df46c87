// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/ppargo/internal/core/domain"
)

// Executor runs external processes such as the compiler and the linker.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation to completion and returns everything it wrote to stderr.
	// A non-zero exit status is returned as an error carrying the exit code.
	Execute(ctx context.Context, inv domain.Invocation) ([]byte, error)
}

// ToolLocator resolves executables on the search path.
type ToolLocator interface {
	// Locate returns the absolute path of the named executable.
	Locate(name string) (string, error)
}

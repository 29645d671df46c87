package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of build steps.
type Telemetry interface {
	// Record starts a vertex for a named step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Journal appends every later update to the file at path until the
	// returned closer is closed.
	Journal(path string) (io.Closer, error)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded step.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Complete marks the step finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the step as satisfied without running.
	Cached()
}

// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using a progrock recorder.
type Recorder struct {
	sinks *fanout
	rec   *progrock.Recorder
	seq   atomic.Uint64

	closeOnce sync.Once
	closeErr  error
}

// New creates a Recorder whose updates reach only the journals opened on it.
func New() *Recorder {
	return NewRecorder()
}

// NewRecorder creates a Recorder that forwards every update to ws for its
// whole lifetime, in addition to any journal.
func NewRecorder(ws ...progrock.Writer) *Recorder {
	sinks := &fanout{permanent: ws}
	return &Recorder{
		sinks: sinks,
		rec:   progrock.NewRecorder(sinks),
	}
}

// Record starts a vertex. Every call yields a distinct vertex, even when the
// same step name is recorded by successive builds.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	return ctx, &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Journal truncates path and writes each later update to it as one JSON line.
func (r *Recorder) Journal(path string) (io.Closer, error) {
	w, err := progrock.CreateJournal(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create build journal"), "path", path)
	}
	j := &journal{w: w, owner: r.sinks}
	r.sinks.attach(j)
	return j, nil
}

// Close flushes and closes the recording session. Later calls return the first result.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.rec.Close()
	})
	return r.closeErr
}

// fanout forwards updates to the permanent writers and the open journals.
type fanout struct {
	mu        sync.Mutex
	permanent []progrock.Writer
	journals  []*journal
}

func (f *fanout) attach(j *journal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journals = append(f.journals, j)
}

func (f *fanout) detach(j *journal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journals = slices.DeleteFunc(f.journals, func(o *journal) bool { return o == j })
}

func (f *fanout) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := progrock.MultiWriter(f.permanent).WriteStatus(update); err != nil {
		return err
	}
	for _, j := range f.journals {
		if err := j.w.WriteStatus(update); err != nil {
			return err
		}
	}
	return nil
}

func (f *fanout) Close() error {
	f.mu.Lock()
	open := f.journals
	f.journals = nil
	f.mu.Unlock()

	err := progrock.MultiWriter(f.permanent).Close()
	for _, j := range open {
		if jerr := j.Close(); jerr != nil && err == nil {
			err = jerr
		}
	}
	return err
}

type journal struct {
	w     progrock.Writer
	owner *fanout
	once  sync.Once
	err   error
}

// Close stops recording into the journal and closes its file.
func (j *journal) Close() error {
	j.once.Do(func() {
		j.owner.detach(j)
		j.err = j.w.Close()
	})
	return j.err
}

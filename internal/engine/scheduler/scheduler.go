// Package scheduler implements the parallel compilation scheduler.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// UnitStatus represents the status of a compilation unit.
type UnitStatus string

const (
	// StatusPending indicates the unit is waiting for a worker.
	StatusPending UnitStatus = "Pending"
	// StatusRunning indicates the compiler is running for the unit.
	StatusRunning UnitStatus = "Running"
	// StatusCompleted indicates the unit compiled successfully.
	StatusCompleted UnitStatus = "Completed"
	// StatusFailed indicates the compiler rejected the unit.
	StatusFailed UnitStatus = "Failed"
	// StatusCached indicates the unit's object was fresh and reused.
	StatusCached UnitStatus = "Cached"
)

// Scheduler compiles stale units on a bounded worker pool.
type Scheduler struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger

	mu         sync.RWMutex
	unitStatus map[string]UnitStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Scheduler {
	return &Scheduler{
		executor:   executor,
		telemetry:  telemetry,
		logger:     logger,
		unitStatus: make(map[string]UnitStatus),
	}
}

func (s *Scheduler) resetStatuses(verdicts []domain.Verdict) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unitStatus = make(map[string]UnitStatus, len(verdicts))
	for _, v := range verdicts {
		s.unitStatus[v.Unit.RelativePath] = StatusPending
	}
}

func (s *Scheduler) updateStatus(unit string, status UnitStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitStatus[unit] = status
}

// Compile runs the compiler for every stale verdict and returns all object
// files in input order. Every dispatched compilation runs to completion; when
// any fail, the error of the first failing unit in input order is returned.
func (s *Scheduler) Compile(
	ctx context.Context,
	bc *domain.BuildContext,
	verdicts []domain.Verdict,
) (*domain.CompileResult, error) {
	s.resetStatuses(verdicts)

	jobs := bc.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	errs := make([]error, len(verdicts))
	result := &domain.CompileResult{Objects: make([]string, 0, len(verdicts))}

	for i, v := range verdicts {
		result.Objects = append(result.Objects, v.ObjectPath)

		if !v.Stale {
			s.updateStatus(v.Unit.RelativePath, StatusCached)
			_, vertex := s.telemetry.Record(ctx, "compile "+v.Unit.RelativePath)
			vertex.Cached()
			vertex.Complete(nil)
			result.Reused = append(result.Reused, v.Unit.RelativePath)
			continue
		}

		result.Compiled = append(result.Compiled, v.Unit.RelativePath)
		g.Go(func() error {
			errs[i] = s.compileUnit(ctx, bc, v)
			return nil
		})
	}

	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Scheduler) compileUnit(ctx context.Context, bc *domain.BuildContext, v domain.Verdict) error {
	rel := v.Unit.RelativePath
	s.updateStatus(rel, StatusRunning)

	vertexCtx, vertex := s.telemetry.Record(ctx, "compile "+rel)
	s.logger.Info(fmt.Sprintf("Compiling %s (%s)", rel, v.Reason))

	stderr, err := s.executor.Execute(vertexCtx, domain.Invocation{
		Path:   bc.Toolchain.Compiler,
		Args:   bc.Toolchain.CompileArgs(v.Unit.SourcePath, v.ObjectPath, v.DepfilePath, bc.IncludeDirs),
		Dir:    bc.Root,
		Stdout: vertex.Stdout(),
		Stderr: vertex.Stderr(),
	})
	if err == nil {
		err = s.finalize(bc, v)
	}
	if err != nil {
		discardOutputs(v)
		s.updateStatus(rel, StatusFailed)
		vertex.Complete(err)
		return zerr.With(zerr.With(zerr.With(
			zerr.Wrap(domain.ErrCompilationFailed, rel),
			"source", v.Unit.SourcePath),
			"stderr", string(stderr)),
			"reason", err.Error())
	}

	if len(stderr) > 0 {
		s.logger.Warn(fmt.Sprintf("%s:\n%s", rel, stderr))
	}
	s.updateStatus(rel, StatusCompleted)
	vertex.Complete(nil)
	return nil
}

// finalize checks the compiler produced an object and records the flag fingerprint.
func (s *Scheduler) finalize(bc *domain.BuildContext, v domain.Verdict) error {
	if _, err := os.Stat(v.ObjectPath); err != nil {
		return zerr.With(zerr.Wrap(err, "compiler produced no object file"), "path", v.ObjectPath)
	}
	if bc.Fingerprint == "" {
		return nil
	}
	fp := domain.FingerprintPath(v.ObjectPath)
	if err := os.WriteFile(fp, []byte(bc.Fingerprint+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write fingerprint"), "path", fp)
	}
	return nil
}

// discardOutputs removes anything a failed compile may have left behind so
// the next build sees the unit as stale.
func discardOutputs(v domain.Verdict) {
	for _, path := range []string{v.ObjectPath, v.DepfilePath, domain.FingerprintPath(v.ObjectPath)} {
		_ = os.Remove(path)
	}
}

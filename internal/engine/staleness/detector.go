// Package staleness decides which compilation units must be rebuilt.
package staleness

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reasons reported on stale verdicts.
const (
	ReasonObjectMissing      = "object missing"
	ReasonDepfileMissing     = "depfile missing"
	ReasonSourceModified     = "source modified"
	ReasonFlagsChanged       = "compile flags changed"
	ReasonDependencyModified = "dependency modified"
)

// Detector computes per-unit staleness verdicts from filesystem timestamps.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect derives the unit's object and depfile paths beneath the build's
// object root, creates the object's parent directory, and decides whether
// the unit needs recompiling. Equal modification times count as fresh.
func (d *Detector) Detect(bc *domain.BuildContext, unit domain.CompilationUnit) (domain.Verdict, error) {
	obj := unit.ObjectPath(bc.ObjectRoot())
	verdict := domain.Verdict{
		Unit:        unit,
		ObjectPath:  obj,
		DepfilePath: domain.DepfilePath(obj),
	}

	if err := os.MkdirAll(filepath.Dir(obj), domain.DirPerm); err != nil {
		return verdict, zerr.With(zerr.Wrap(err, "failed to create object directory"), "path", filepath.Dir(obj))
	}

	objInfo, err := os.Stat(obj)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stale(verdict, ReasonObjectMissing), nil
		}
		return verdict, zerr.With(zerr.Wrap(err, "failed to stat object file"), "path", obj)
	}

	if _, err := os.Stat(verdict.DepfilePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stale(verdict, ReasonDepfileMissing), nil
		}
		return verdict, zerr.With(zerr.Wrap(err, "failed to stat depfile"), "path", verdict.DepfilePath)
	}

	srcInfo, err := os.Stat(unit.SourcePath)
	if err != nil {
		return verdict, zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", unit.SourcePath)
	}

	objTime := objInfo.ModTime()
	if srcInfo.ModTime().After(objTime) {
		return stale(verdict, ReasonSourceModified), nil
	}

	if bc.Fingerprint != "" && readFingerprint(domain.FingerprintPath(obj)) != bc.Fingerprint {
		return stale(verdict, ReasonFlagsChanged), nil
	}

	for _, dep := range readDependencies(verdict.DepfilePath) {
		if !filepath.IsAbs(dep) {
			dep = filepath.Join(bc.Root, dep)
		}
		info, err := os.Stat(dep)
		if err != nil {
			// Deleted or moved headers do not force a rebuild.
			continue
		}
		if info.ModTime().After(objTime) {
			return stale(verdict, ReasonDependencyModified+": "+dep), nil
		}
	}

	return verdict, nil
}

func stale(v domain.Verdict, reason string) domain.Verdict {
	v.Stale = true
	v.Reason = reason
	return v
}

// readDependencies returns the depfile's paths. An unreadable depfile has no dependencies.
func readDependencies(path string) []string {
	data, err := os.ReadFile(path) //nolint:gosec // path derived from the object root
	if err != nil {
		return nil
	}
	return ParseDepfile(string(data))
}

func readFingerprint(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // path derived from the object root
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceCollector = (*Collector)(nil)

// Collector implements ports.SourceCollector on top of Walker.
type Collector struct {
	walker *Walker
}

// NewCollector creates a new Collector.
func NewCollector(walker *Walker) *Collector {
	return &Collector{walker: walker}
}

// Collect returns the translation units beneath root/src in lexical walk order.
func (c *Collector) Collect(root string) ([]domain.CompilationUnit, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "path", root)
	}

	srcDir := filepath.Join(absRoot, domain.SourceDirName)
	info, err := os.Stat(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingSourceDirectory, srcDir), "path", srcDir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", srcDir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingSourceDirectory, srcDir), "path", srcDir)
	}

	var units []domain.CompilationUnit
	for path, walkErr := range c.walker.WalkFiles(srcDir) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(walkErr, "failed to walk source directory"), "path", srcDir)
		}
		if !domain.IsSourceFile(path) {
			continue
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize source"), "path", path)
		}
		tree, err := filepath.Rel(srcDir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize source"), "path", path)
		}

		units = append(units, domain.CompilationUnit{
			SourcePath:   path,
			RelativePath: rel,
			TreePath:     tree,
		})
	}

	return units, nil
}

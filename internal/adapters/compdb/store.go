// Package compdb writes the compilation database consumed by editors and linters.
package compdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilationDatabase = (*Store)(nil)

// Store implements ports.CompilationDatabase as a compile_commands.json file.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write atomically replaces the database at path with entries, preserving their order.
func (s *Store) Write(path string, entries []domain.CompileCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []domain.CompileCommand{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal compilation database")
	}
	data = append(data, '\n')

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for compilation database"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".compile_commands-*.json")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create compilation database"), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write compilation database"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write compilation database"), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set compilation database permissions"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace compilation database"), "path", path)
	}

	return nil
}

// Read loads a compilation database. A missing file yields no entries.
func Read(path string) ([]domain.CompileCommand, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read compilation database"), "path", path)
	}

	var entries []domain.CompileCommand
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal compilation database"), "path", path)
	}
	return entries, nil
}

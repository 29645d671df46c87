package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolLocator = (*PathLocator)(nil)

// PathLocator implements ports.ToolLocator by scanning PATH.
type PathLocator struct {
	environ func() []string
}

// NewPathLocator creates a PathLocator reading the process environment.
func NewPathLocator() *PathLocator {
	return &PathLocator{environ: os.Environ}
}

// Locate returns the absolute path of name. Names containing a path
// separator are checked directly instead of being searched for.
func (l *PathLocator) Locate(name string) (string, error) {
	if name == "" {
		return "", zerr.Wrap(exec.ErrNotFound, "empty executable name")
	}

	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if err := findExecutable(name); err != nil {
			return "", zerr.With(zerr.Wrap(err, "executable not usable"), "path", name)
		}
		return filepath.Abs(name)
	}

	path, err := lookPath(name, l.environ())
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "executable not found in PATH"), "name", name)
	}
	return filepath.Abs(path)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	candidates := []string{file}
	if runtime.GOOS == "windows" && filepath.Ext(file) == "" {
		candidates = append(candidates, file+".exe")
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, candidate := range candidates {
			full := filepath.Join(dir, candidate)
			if err := findExecutable(full); err == nil {
				return full, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && (runtime.GOOS == "windows" || m&0o111 != 0) {
		return nil
	}
	return os.ErrPermission
}

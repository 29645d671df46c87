// Package config provides the manifest loader for ppargo.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*FileManifestLoader)(nil)

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	Filename string
}

// NewLoader creates a loader for the default manifest file name.
func NewLoader() *FileManifestLoader {
	return &FileManifestLoader{Filename: domain.ManifestFileName}
}

// Load finds the manifest in cwd or the nearest parent directory and parses it.
func (l *FileManifestLoader) Load(cwd string) (*domain.Manifest, error) {
	path, err := l.Find(cwd)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Find walks upward from cwd and returns the path of the first manifest found.
func (l *FileManifestLoader) Find(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "path", cwd)
	}

	for {
		candidate := filepath.Join(dir, l.Filename)
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, l.Filename), "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads the manifest at path. The manifest's directory becomes the project root.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file ManifestFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, err.Error()), "path", path)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "path", path)
	}

	return toDomain(&file, root, path)
}

func toDomain(file *ManifestFile, root, path string) (*domain.Manifest, error) {
	name := strings.TrimSpace(file.Package.Name)
	if name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "package.name is required"), "path", path)
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidManifest, "package.name must not contain path separators"),
			"package_name", name,
		)
	}

	m := &domain.Manifest{
		Root: root,
		Package: domain.PackageInfo{
			Name:    name,
			Version: file.Package.Version,
			Edition: withDefault(file.Package.Edition, domain.DefaultEdition),
		},
		Toolchain: domain.ToolchainSettings{
			Compiler: withDefault(file.Toolchain.Compiler, domain.DefaultCompiler),
			Linker:   strings.TrimSpace(file.Toolchain.Linker),
		},
		Features: domain.Features{
			PackageManager: strings.ToLower(withDefault(file.Features.PackageManager, domain.DefaultPackageManager)),
			VcpkgRoot:      file.Features.VcpkgRoot,
		},
		Build: domain.BuildSettings{
			CompileCommands: file.Build.CompileCommands,
		},
	}

	names := make([]string, 0, len(file.Dependencies))
	for depName := range file.Dependencies {
		names = append(names, depName)
	}
	slices.Sort(names)

	for _, depName := range names {
		dto := file.Dependencies[depName]
		m.Dependencies = append(m.Dependencies, domain.Dependency{
			Name:    depName,
			Version: dto.Version,
			Libs:    dto.Libs,
		})
	}

	return m, nil
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

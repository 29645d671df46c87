package packages

import (
	"path/filepath"
	"runtime"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageBackends = (*Selector)(nil)

// Selector implements ports.PackageBackends.
type Selector struct {
	logger       ports.Logger
	goos, goarch string
}

// NewSelector creates a Selector for the host platform.
func NewSelector(logger ports.Logger) *Selector {
	return NewSelectorFor(logger, runtime.GOOS, runtime.GOARCH)
}

// NewSelectorFor creates a Selector for an explicit platform.
func NewSelectorFor(logger ports.Logger, goos, goarch string) *Selector {
	return &Selector{logger: logger, goos: goos, goarch: goarch}
}

// Select returns the backend named by the manifest's package_manager feature.
func (s *Selector) Select(m *domain.Manifest) (ports.PackageResolver, error) {
	switch m.Features.PackageManager {
	case "", domain.PackageManagerNone:
		return None{}, nil
	case domain.PackageManagerVcpkg:
		root := m.Features.VcpkgRoot
		if root != "" && !filepath.IsAbs(root) {
			root = filepath.Join(m.Root, root)
		}
		return NewVcpkg(root, m.LinkLibraries(), s.goos, s.goarch, s.logger), nil
	default:
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnknownPackageBackend, m.Features.PackageManager),
			"package_manager", m.Features.PackageManager,
		)
	}
}

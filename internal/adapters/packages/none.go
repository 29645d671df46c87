// Package packages implements the package path resolver backends.
package packages

import (
	"context"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
)

var _ ports.PackageResolver = None{}

// None is the backend for projects without managed dependencies.
type None struct{}

// Resolve returns an empty path set.
func (None) Resolve(_ context.Context) (domain.PackagePathSet, error) {
	return domain.PackagePathSet{}, nil
}

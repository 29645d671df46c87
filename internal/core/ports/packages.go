package ports

import (
	"context"

	"go.trai.ch/ppargo/internal/core/domain"
)

// PackageResolver supplies include directories, library directories and
// link libraries for the declared dependencies.
//
//go:generate go run go.uber.org/mock/mockgen -source=packages.go -destination=mocks/mock_packages.go -package=mocks
type PackageResolver interface {
	Resolve(ctx context.Context) (domain.PackagePathSet, error)
}

// PackageBackends picks the PackageResolver a manifest asks for.
type PackageBackends interface {
	Select(m *domain.Manifest) (PackageResolver, error)
}

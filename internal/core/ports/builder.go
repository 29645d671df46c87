package ports

import (
	"context"

	"go.trai.ch/ppargo/internal/core/domain"
)

// Builder produces the artifact of a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	Build(ctx context.Context, m *domain.Manifest, opts domain.BuildOptions) (*domain.BuildReport, error)
}

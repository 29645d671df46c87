package ports

import "go.trai.ch/ppargo/internal/core/domain"

// SourceCollector discovers the translation units of a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type SourceCollector interface {
	// Collect returns every translation unit beneath root's source directory in a stable order.
	// An empty result is not an error.
	Collect(root string) ([]domain.CompilationUnit, error)
}

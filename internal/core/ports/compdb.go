package ports

import "go.trai.ch/ppargo/internal/core/domain"

// CompilationDatabase persists compile commands for editors and linters.
//
//go:generate go run go.uber.org/mock/mockgen -source=compdb.go -destination=mocks/mock_compdb.go -package=mocks
type CompilationDatabase interface {
	Write(path string, entries []domain.CompileCommand) error
}

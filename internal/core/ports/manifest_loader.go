package ports

import "go.trai.ch/ppargo/internal/core/domain"

// ManifestLoader defines the interface for loading the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load finds the manifest in cwd or the nearest parent directory and parses it.
	Load(cwd string) (*domain.Manifest, error)
}

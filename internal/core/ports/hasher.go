package ports

// Hasher defines the interface for computing fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashStrings returns a stable digest of the ordered parts.
	HashStrings(parts ...string) string
}

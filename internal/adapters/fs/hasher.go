package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ppargo/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash fingerprints.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashStrings hashes the parts in order, separated so that ("ab","c") and ("a","bc") differ.
func (h *Hasher) HashStrings(parts ...string) string {
	hasher := xxhash.New()
	for _, part := range parts {
		_, _ = hasher.WriteString(part)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

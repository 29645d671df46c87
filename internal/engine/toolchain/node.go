package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain resolver Graft node.
const NodeID graft.ID = "engine.toolchain"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocatorNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			locator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(locator), nil
		},
	})
}

package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// LocatorNodeID is the unique identifier for the tool locator Graft node.
	LocatorNodeID graft.ID = "adapter.locator"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolLocator, error) {
			return NewPathLocator(), nil
		},
	})
}

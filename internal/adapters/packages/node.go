package packages

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/internal/adapters/logger"
	"go.trai.ch/ppargo/internal/core/ports"
)

// NodeID is the unique identifier for the package backend selector Graft node.
const NodeID graft.ID = "adapter.packages"

func init() {
	graft.Register(graft.Node[ports.PackageBackends]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageBackends, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(log), nil
		},
	})
}

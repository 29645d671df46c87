package staleness

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the staleness detector Graft node.
const NodeID graft.ID = "engine.staleness"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Detector, error) {
			return NewDetector(), nil
		},
	})
}

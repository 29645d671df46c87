package linker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/core/ports"
)

// NodeID is the unique identifier for the linker Graft node.
const NodeID graft.ID = "engine.linker"

func init() {
	graft.Register(graft.Node[*Linker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Linker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinker(executor, telemetry, log), nil
		},
	})
}

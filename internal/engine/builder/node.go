package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/internal/adapters/compdb"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/packages"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/ppargo/internal/engine/linker"
	"go.trai.ch/ppargo/internal/engine/scheduler"
	"go.trai.ch/ppargo/internal/engine/staleness"
	"go.trai.ch/ppargo/internal/engine/toolchain"
)

// NodeID is the unique identifier for the build engine Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			packages.NodeID,
			fs.CollectorNodeID,
			fs.HasherNodeID,
			staleness.NodeID,
			scheduler.NodeID,
			linker.NodeID,
			compdb.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (ports.Builder, error) {
	var (
		deps Deps
		err  error
	)

	if deps.Toolchain, err = graft.Dep[*toolchain.Resolver](ctx); err != nil {
		return nil, err
	}
	if deps.Packages, err = graft.Dep[ports.PackageBackends](ctx); err != nil {
		return nil, err
	}
	if deps.Collector, err = graft.Dep[ports.SourceCollector](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Detector, err = graft.Dep[*staleness.Detector](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if deps.Linker, err = graft.Dep[*linker.Linker](ctx); err != nil {
		return nil, err
	}
	if deps.CompDB, err = graft.Dep[ports.CompilationDatabase](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ppargo/internal/adapters/compdb"
	_ "go.trai.ch/ppargo/internal/adapters/config"
	_ "go.trai.ch/ppargo/internal/adapters/fs"
	_ "go.trai.ch/ppargo/internal/adapters/logger"
	_ "go.trai.ch/ppargo/internal/adapters/packages"
	_ "go.trai.ch/ppargo/internal/adapters/shell"
	_ "go.trai.ch/ppargo/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/ppargo/internal/app"
	_ "go.trai.ch/ppargo/internal/engine/builder"
	_ "go.trai.ch/ppargo/internal/engine/linker"
	_ "go.trai.ch/ppargo/internal/engine/scheduler"
	_ "go.trai.ch/ppargo/internal/engine/staleness"
	_ "go.trai.ch/ppargo/internal/engine/toolchain"
)

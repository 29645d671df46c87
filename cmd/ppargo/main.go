// Package main is the entry point for the ppargo build tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppargo/cmd/ppargo/commands"
	"go.trai.ch/ppargo/internal/app"
	"go.trai.ch/ppargo/internal/core/domain"
	_ "go.trai.ch/ppargo/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if diag := domain.Diagnostics(err); diag != "" {
			_, _ = os.Stderr.WriteString(diag)
		}
		if code, ok := domain.ProgramExitCode(err); ok {
			return code
		}
		return 1
	}
	return 0
}

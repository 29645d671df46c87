// Package commands implements the CLI commands for the ppargo build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/ppargo/internal/app"
	"go.trai.ch/ppargo/internal/build"
)

// CLI represents the command line interface for ppargo.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ppargo",
		Short:         "An incremental build tool for C and C++ projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("release", "r", false, "Build with optimizations in the release profile")
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel compile jobs (0 uses every CPU)")
	cmd.Flags().Bool("compile-commands", false, "Write compile_commands.json at the project root")
}

func buildOptions(cmd *cobra.Command) app.BuildOptions {
	release, _ := cmd.Flags().GetBool("release")
	jobs, _ := cmd.Flags().GetInt("jobs")
	compileCommands, _ := cmd.Flags().GetBool("compile-commands")
	return app.BuildOptions{
		Release:         release,
		Jobs:            jobs,
		CompileCommands: compileCommands,
	}
}

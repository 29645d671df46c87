package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ppargo/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Build the project and run the resulting program",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)
			if opts.Jobs < 0 {
				return fmt.Errorf("invalid --jobs value %d", opts.Jobs)
			}
			return c.app.Run(cmd.Context(), app.RunOptions{
				BuildOptions: opts,
				Args:         args,
			})
		},
	}
	addBuildFlags(cmd)
	return cmd
}

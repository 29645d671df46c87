package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile changed sources and link the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := buildOptions(cmd)
			if opts.Jobs < 0 {
				return fmt.Errorf("invalid --jobs value %d", opts.Jobs)
			}
			_, err := c.app.Build(cmd.Context(), opts)
			return err
		},
	}
	addBuildFlags(cmd)
	return cmd
}

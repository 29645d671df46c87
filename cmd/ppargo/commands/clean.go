package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ppargo/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, _ := cmd.Flags().GetBool("release")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Release: release})
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Remove only the release profile outputs")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crossbuild/internal/ui/output"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List all known targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := c.app.Targets(projectsFile(cmd))
			if err != nil {
				return err
			}
			output.NewPrinter(cmd.OutOrStdout()).Listing(targets)
			return nil
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crossbuild/internal/ui/output"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [names...]",
		Short: "Resolve target names, aliases, and legacy suffixes to concrete targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout())
			for _, name := range args {
				target, err := c.app.Resolve(name, projectsFile(cmd))
				if err != nil {
					return err
				}
				printer.Target(target)
			}
			return nil
		},
	}
}

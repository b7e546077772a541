package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/ui/output"
)

func (c *CLI) newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [targets...]",
		Short: "Compute the build order for the given targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			deps, _ := cmd.Flags().GetBool("deps")
			toolchain, _ := cmd.Flags().GetBool("toolchain")
			skipSDK, _ := cmd.Flags().GetBool("skip-sdk")
			morelloFromSource, _ := cmd.Flags().GetBool("morello-from-source")

			policy := domain.Policy{
				IncludeDependencies:          deps,
				IncludeToolchainDependencies: toolchain,
				SkipSDK:                      skipSDK,
				BuildMorelloFromSource:       morelloFromSource,
			}

			order, err := c.app.Order(args, policy, projectsFile(cmd))
			if err != nil {
				return err
			}

			output.NewPrinter(cmd.OutOrStdout()).BuildOrder(order)
			return nil
		},
	}
	cmd.Flags().BoolP("deps", "d", false, "Include transitive dependencies of the requested targets")
	cmd.Flags().Bool("toolchain", true, "Include toolchain targets (compilers, emulators, SDKs)")
	cmd.Flags().Bool("skip-sdk", false, "Skip targets a prebuilt SDK already provides")
	cmd.Flags().Bool("morello-from-source", false, "Build Morello firmware from source instead of downloading")
	return cmd
}

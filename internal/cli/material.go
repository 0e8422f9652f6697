package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/wire"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Browse the material catalog",
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all materials",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.MaterialAdapter().List(foundryctx.CommandContext())
		return err
	},
}

var materialShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a material's compatibility and thresholds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.MaterialAdapter().Show(foundryctx.CommandContext(), args[0])
		return err
	},
}

var materialRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend materials for a process and use case",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process", "use-case"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		useCase, _ := cmd.Flags().GetString("use-case")

		_, err := wire.MaterialAdapter().Recommend(foundryctx.CommandContext(), process, useCase)
		return err
	},
}

func init() {
	materialRecommendCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	materialRecommendCmd.Flags().StringP("use-case", "u", "", "Use case (e.g. enclosure)")

	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)
	materialCmd.AddCommand(materialRecommendCmd)
}

// MaterialCmd returns the material command
func MaterialCmd() *cobra.Command {
	return materialCmd
}

package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/wire"
)

var dfmCmd = &cobra.Command{
	Use:   "dfm",
	Short: "Design-for-manufacturing checks",
}

var dfmEvaluateCmd = &cobra.Command{
	Use:   "evaluate [part-id]",
	Short: "Evaluate a part and store its score and findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.DFMAdapter().EvaluatePart(foundryctx.CommandContext(), args[0])
		return err
	},
}

var dfmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a material and process pair without storing anything",
	Long: `Evaluate a material and process pair without storing anything.

Examples:
  foundry dfm check --material "PC Plastic" --process "Injection Molding"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		material, _ := cmd.Flags().GetString("material")
		process, _ := cmd.Flags().GetString("process")

		_, err := wire.DFMAdapter().Evaluate(foundryctx.CommandContext(), material, process)
		return err
	},
}

func init() {
	dfmCheckCmd.Flags().StringP("material", "m", "", "Material name")
	dfmCheckCmd.Flags().StringP("process", "p", "", "Manufacturing process")

	dfmCmd.AddCommand(dfmEvaluateCmd)
	dfmCmd.AddCommand(dfmCheckCmd)
}

// DFMCmd returns the dfm command
func DFMCmd() *cobra.Command {
	return dfmCmd
}

package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/wire"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Cost estimates, quantity curves and tooling advice",
}

var costEstimateCmd = &cobra.Command{
	Use:   "estimate [part-id]",
	Short: "Estimate cost for a part at its quantity (or --quantity)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.CostAdapter().EstimatePart(foundryctx.CommandContext(), args[0], optionalInt(cmd, "quantity"))
		return err
	},
}

var costQuickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Estimate cost for a process, material and quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		material, _ := cmd.Flags().GetString("material")
		quantity, _ := cmd.Flags().GetInt("quantity")

		_, err := wire.CostAdapter().Estimate(foundryctx.CommandContext(), process, material, quantity)
		return err
	},
}

var costCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show cost per part across standard quantities",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		material, _ := cmd.Flags().GetString("material")

		_, err := wire.CostAdapter().Curve(foundryctx.CommandContext(), process, material)
		return err
	},
}

var costToolingCmd = &cobra.Command{
	Use:   "tooling",
	Short: "Recommend tooling for a process at a quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		quantity, _ := cmd.Flags().GetInt("quantity")

		_, err := wire.CostAdapter().Tooling(foundryctx.CommandContext(), process, quantity)
		return err
	},
}

func init() {
	costEstimateCmd.Flags().IntP("quantity", "q", 0, "Override the stored quantity")

	costQuickCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	costQuickCmd.Flags().StringP("material", "m", "", "Material name")
	costQuickCmd.Flags().IntP("quantity", "q", 1, "Production quantity")

	costCurveCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	costCurveCmd.Flags().StringP("material", "m", "", "Material name")

	costToolingCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	costToolingCmd.Flags().IntP("quantity", "q", 1, "Production quantity")

	costCmd.AddCommand(costEstimateCmd)
	costCmd.AddCommand(costQuickCmd)
	costCmd.AddCommand(costCurveCmd)
	costCmd.AddCommand(costToolingCmd)
}

// CostCmd returns the cost command
func CostCmd() *cobra.Command {
	return costCmd
}

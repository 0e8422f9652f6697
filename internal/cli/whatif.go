package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/wire"
)

var whatifCmd = &cobra.Command{
	Use:   "whatif [part-id]",
	Short: "Simulate another process and material for a part",
	Long: `Run DFM, cost and vendor ranking for a hypothetical process and material.
Nothing is stored unless --commit is given, in which case the part takes the
new selection and its DFM result.

Examples:
  foundry whatif PART-001 --process FDM --material "PLA Plastic"
  foundry whatif PART-001 --process "CNC Machining" --material "Aluminum Metal" --quantity 200 --commit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process", "material"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		material, _ := cmd.Flags().GetString("material")
		commit, _ := cmd.Flags().GetBool("commit")

		_, err := wire.WhatIfAdapter().Simulate(foundryctx.CommandContext(), primary.SimulateRequest{
			PartID:   args[0],
			Process:  process,
			Material: material,
			Quantity: optionalInt(cmd, "quantity"),
			Commit:   commit,
		})
		return err
	},
}

func init() {
	whatifCmd.Flags().StringP("process", "p", "", "Hypothetical process")
	whatifCmd.Flags().StringP("material", "m", "", "Hypothetical material")
	whatifCmd.Flags().IntP("quantity", "q", 0, "Hypothetical quantity (default: stored quantity)")
	whatifCmd.Flags().Bool("commit", false, "Apply the scenario to the part")
}

// WhatIfCmd returns the whatif command
func WhatIfCmd() *cobra.Command {
	return whatifCmd
}

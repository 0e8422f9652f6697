package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/wire"
)

var partCmd = &cobra.Command{
	Use:   "part",
	Short: "Manage parts (design intent and selected configuration)",
	Long: `A part is the unit every decision is made about: its design intent, the
selected material, process and quantity, and the last DFM result.`,
}

var partIntentCmd = &cobra.Command{
	Use:   "intent [part-id]",
	Short: "Record the design intent of a part (creates the part if new)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := foundryctx.CommandContext()

		useCase, _ := cmd.Flags().GetString("use-case")
		environment, _ := cmd.Flags().GetString("environment")
		scale, _ := cmd.Flags().GetString("scale")
		load, _ := cmd.Flags().GetString("load")
		finish, _ := cmd.Flags().GetString("finish")

		_, err := wire.PartAdapter().SubmitIntent(ctx, args[0], primary.DesignIntent{
			UseCase:           useCase,
			Environment:       environment,
			ProductionScale:   scale,
			LoadCondition:     load,
			FinishRequirement: finish,
		})
		return err
	},
}

var partSelectCmd = &cobra.Command{
	Use:   "select [part-id]",
	Short: "Change the material, process or quantity of a part",
	Long: `Change the selected configuration without re-running DFM. The stored
score is reported as stale until 'foundry dfm evaluate' runs again.

Examples:
  foundry part select PART-001 --material "ABS Plastic" --process "Injection Molding"
  foundry part select PART-001 --quantity 5000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := foundryctx.CommandContext()

		_, err := wire.PartAdapter().Select(ctx, primary.SelectConfigurationRequest{
			PartID:   args[0],
			Material: optionalString(cmd, "material"),
			Process:  optionalString(cmd, "process"),
			Quantity: optionalInt(cmd, "quantity"),
		})
		return err
	},
}

var partShowCmd = &cobra.Command{
	Use:   "show [part-id]",
	Short: "Show part details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.PartAdapter().Show(foundryctx.CommandContext(), args[0])
		return err
	},
}

var partListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parts",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.PartAdapter().List(foundryctx.CommandContext())
		return err
	},
}

var partActivityCmd = &cobra.Command{
	Use:   "activity [part-id]",
	Short: "Show recent activity for a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		_, err := wire.PartAdapter().Activity(foundryctx.CommandContext(), args[0], limit)
		return err
	},
}

func init() {
	// part intent flags
	partIntentCmd.Flags().StringP("use-case", "u", "", "What the part is for (e.g. enclosure, bracket)")
	partIntentCmd.Flags().StringP("environment", "e", "", "Operating environment (e.g. indoor, outdoor)")
	partIntentCmd.Flags().String("scale", "", "Production scale (prototype, low, mass)")
	partIntentCmd.Flags().String("load", "", "Load condition")
	partIntentCmd.Flags().String("finish", "", "Finish requirement")

	// part select flags
	partSelectCmd.Flags().StringP("material", "m", "", "Material name")
	partSelectCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	partSelectCmd.Flags().IntP("quantity", "q", 0, "Production quantity")

	// part activity flags
	partActivityCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 for all)")

	// Register subcommands
	partCmd.AddCommand(partIntentCmd)
	partCmd.AddCommand(partSelectCmd)
	partCmd.AddCommand(partShowCmd)
	partCmd.AddCommand(partListCmd)
	partCmd.AddCommand(partActivityCmd)
}

// PartCmd returns the part command
func PartCmd() *cobra.Command {
	return partCmd
}

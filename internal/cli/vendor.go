package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/wire"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage the vendor pool and shortlist vendors",
}

var vendorRankCmd = &cobra.Command{
	Use:   "rank [part-id]",
	Short: "Shortlist vendors for a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.VendorAdapter().RankForPart(foundryctx.CommandContext(), args[0])
		return err
	},
}

var vendorMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Shortlist vendors for a process, material and quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "process", "material"); err != nil {
			return err
		}
		process, _ := cmd.Flags().GetString("process")
		material, _ := cmd.Flags().GetString("material")
		quantity, _ := cmd.Flags().GetInt("quantity")

		_, err := wire.VendorAdapter().Rank(foundryctx.CommandContext(), primary.RankVendorsRequest{
			Process:  process,
			Material: material,
			Quantity: quantity,
		})
		return err
	},
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the vendor pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.VendorAdapter().List(foundryctx.CommandContext())
		return err
	},
}

var vendorAddCmd = &cobra.Command{
	Use:   "add [vendor-id]",
	Short: "Add a vendor to the pool",
	Long: `Add a vendor to the pool.

Examples:
  foundry vendor add VEN-010 --name "Acme Molding" --tier 2 \
    --processes "injection molding" --materials "abs plastic,pp plastic" --moq 500`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		city, _ := cmd.Flags().GetString("city")
		tier, _ := cmd.Flags().GetInt("tier")
		processes, _ := cmd.Flags().GetString("processes")
		materials, _ := cmd.Flags().GetString("materials")
		moq, _ := cmd.Flags().GetInt("moq")
		contact, _ := cmd.Flags().GetString("contact")

		_, err := wire.VendorAdapter().Add(foundryctx.CommandContext(), primary.AddVendorRequest{
			VendorID:    args[0],
			Name:        name,
			City:        city,
			Tier:        tier,
			Processes:   splitList(processes),
			Materials:   splitList(materials),
			MinOrderQty: moq,
			Contact:     contact,
		})
		return err
	},
}

func init() {
	vendorMatchCmd.Flags().StringP("process", "p", "", "Manufacturing process")
	vendorMatchCmd.Flags().StringP("material", "m", "", "Material name")
	vendorMatchCmd.Flags().IntP("quantity", "q", 1, "Production quantity")

	vendorAddCmd.Flags().String("name", "", "Vendor name")
	vendorAddCmd.Flags().String("city", "", "City")
	vendorAddCmd.Flags().Int("tier", 1, "Tier (1 is preferred)")
	vendorAddCmd.Flags().String("processes", "", "Comma-separated processes")
	vendorAddCmd.Flags().String("materials", "", "Comma-separated materials")
	vendorAddCmd.Flags().Int("moq", 0, "Minimum order quantity")
	vendorAddCmd.Flags().String("contact", "", "Contact details")

	vendorCmd.AddCommand(vendorRankCmd)
	vendorCmd.AddCommand(vendorMatchCmd)
	vendorCmd.AddCommand(vendorListCmd)
	vendorCmd.AddCommand(vendorAddCmd)
}

// VendorCmd returns the vendor command
func VendorCmd() *cobra.Command {
	return vendorCmd
}

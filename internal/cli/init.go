package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/foundry/internal/adapters/catalog"
	"github.com/example/foundry/internal/config"
	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/db"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
	"github.com/example/foundry/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the foundry database and vendor pool",
		Long: `Initialize foundry: write ~/.foundry/config.json if missing, create or
upgrade the database, and load the starter vendor pool. Safe to re-run.

Examples:
  foundry init           # database + starter vendors
  foundry init --demo    # also load demo parts and snapshots`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := foundryctx.CommandContext()

			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}
			if err := initConfig(dir); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			// Opening the database creates or migrates the schema
			database := wire.Database()
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}
			fmt.Printf("✓ Database ready at %s\n", dbPath)

			vendors, err := catalog.DefaultVendors()
			if err != nil {
				return err
			}
			added, err := seedVendors(ctx, wire.VendorService(), vendors)
			if err != nil {
				return fmt.Errorf("failed to load vendors: %w", err)
			}
			fmt.Printf("✓ Vendor pool ready (%d added, %d already present)\n", added, len(vendors)-added)

			if demo {
				if _, err := wire.PartService().GetPart(ctx, "PART-001"); err == nil {
					fmt.Println("✓ Demo parts already present")
				} else if errors.Is(err, secondary.ErrNotFound) {
					if err := db.SeedFixtures(database); err != nil {
						return fmt.Errorf("failed to load demo parts: %w", err)
					}
					fmt.Println("✓ Demo parts and snapshots loaded")
				} else {
					return err
				}
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  foundry part intent PART-100 --use-case enclosure")
			fmt.Println("  foundry part select PART-100 --material \"ABS Plastic\" --process \"Injection Molding\" --quantity 5000")
			fmt.Println("  foundry dfm evaluate PART-100")

			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Load demo parts and snapshots")

	return cmd
}

// initConfig writes a default config.json unless one exists.
func initConfig(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err == nil {
		return nil // Already exists, skip
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	if err := config.SaveConfig(dir, cfg); err != nil {
		return err
	}
	fmt.Printf("✓ Config file created at %s\n", filepath.Join(dir, "config.json"))
	return nil
}

// seedVendors adds every vendor not already in the pool and returns how many
// were added.
func seedVendors(ctx context.Context, service primary.VendorService, vendors []*secondary.VendorRecord) (int, error) {
	existing, err := service.ListVendors(ctx)
	if err != nil {
		return 0, err
	}
	present := make(map[string]bool, len(existing))
	for _, v := range existing {
		present[v.ID] = true
	}

	added := 0
	for _, v := range vendors {
		if present[v.ID] {
			continue
		}
		_, err := service.AddVendor(ctx, primary.AddVendorRequest{
			VendorID:    v.ID,
			Name:        v.Name,
			City:        v.City,
			Tier:        v.Tier,
			Processes:   v.Processes,
			Materials:   v.Materials,
			MinOrderQty: v.MinOrderQty,
			Contact:     v.Contact,
		})
		if err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/foundry/internal/adapters/catalog"
	"github.com/example/foundry/internal/adapters/sqlite"
	"github.com/example/foundry/internal/config"
	"github.com/example/foundry/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the foundry environment",
		Long: `Health check for foundry.

Validates:
- Config file (~/.foundry/config.json)
- Database presence and schema version
- Material catalog (built-in or configured override)
- Vendor pool

Examples:
  foundry doctor              # Run full health check
  foundry doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}
			cfg, cfgResult := checkConfig(dir)
			cfg.ApplyEnv(os.Getenv)

			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath = filepath.Join(dir, "foundry.db")
			}

			results := []CheckResult{
				cfgResult,
				checkDatabase(dbPath),
				checkMaterialCatalog(cfg.MaterialCatalogPath),
				checkVendorPool(dbPath),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printResults(results []CheckResult, hasErrors bool) {
	fmt.Println()
	fmt.Println("Check              Status")
	fmt.Println("─────────────────────────")
	for _, r := range results {
		fmt.Printf("%-18s %s\n", r.Name, r.Status)
	}
	fmt.Println()

	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Println("Details:")
				hasDetails = true
			}
			fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Println("\n⚠ Issues found. Run 'foundry init' to set up.")
	} else {
		fmt.Println("All checks passed.")
	}
}

// checkConfig loads the config file. A missing file only warns.
func checkConfig(dir string) (*config.Config, CheckResult) {
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return &config.Config{}, CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); os.IsNotExist(err) {
		return cfg, CheckResult{Name: "Config", Status: "⚠", Details: "  No config.json, using defaults"}
	}
	return cfg, CheckResult{Name: "Config", Status: "✓"}
}

// openExisting opens a database without creating or migrating it.
func openExisting(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s not found", path)
	}
	return sql.Open("sqlite3", path)
}

// checkDatabase verifies the database exists and is fully migrated.
// It never creates or upgrades the file.
func checkDatabase(path string) CheckResult {
	conn, err := openExisting(path)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	defer conn.Close()

	v, err := db.CurrentVersion(conn)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if v != db.LatestVersion() {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  Schema at version %d, expected %d", v, db.LatestVersion()),
		}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

// checkMaterialCatalog parses the configured catalog.
func checkMaterialCatalog(path string) CheckResult {
	records, err := catalog.NewMaterialSource(path).List(context.Background())
	if err != nil {
		return CheckResult{Name: "Material Catalog", Status: "✗", Details: "  " + err.Error()}
	}
	if len(records) == 0 {
		return CheckResult{Name: "Material Catalog", Status: "⚠", Details: "  Catalog is empty; DFM falls back to default thresholds"}
	}
	return CheckResult{Name: "Material Catalog", Status: "✓"}
}

// checkVendorPool warns when no vendor can be ranked.
func checkVendorPool(path string) CheckResult {
	conn, err := openExisting(path)
	if err != nil {
		return CheckResult{Name: "Vendor Pool", Status: "⚠", Details: "  No database yet"}
	}
	defer conn.Close()

	vendors, err := sqlite.NewVendorRepository(conn).List(context.Background())
	if err != nil {
		return CheckResult{Name: "Vendor Pool", Status: "✗", Details: "  " + err.Error()}
	}
	if len(vendors) == 0 {
		return CheckResult{Name: "Vendor Pool", Status: "⚠", Details: "  Pool is empty; run 'foundry init' to load starter vendors"}
	}
	return CheckResult{Name: "Vendor Pool", Status: "✓"}
}

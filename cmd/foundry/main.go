package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/foundry/internal/cli"
	"github.com/example/foundry/internal/version"
	"github.com/example/foundry/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "foundry",
		Short:   "foundry - manufacturing decision engine",
		Version: version.String(),
		Long: `foundry advises on how to make a part: DFM risk for the selected
material and process, cost at quantity, a vendor shortlist, what-if
scenarios and version-to-version comparison.`,
		SilenceUsage: true,
	}

	// Setup
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Decisions
	rootCmd.AddCommand(cli.PartCmd())
	rootCmd.AddCommand(cli.DFMCmd())
	rootCmd.AddCommand(cli.CostCmd())
	rootCmd.AddCommand(cli.VendorCmd())
	rootCmd.AddCommand(cli.WhatIfCmd())
	rootCmd.AddCommand(cli.VersionCmd())
	rootCmd.AddCommand(cli.QuoteCmd())
	rootCmd.AddCommand(cli.HandoffCmd())
	rootCmd.AddCommand(cli.MaterialCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

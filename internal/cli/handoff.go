package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/wire"
)

// HandoffCmd returns the handoff command
func HandoffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handoff [part-id]",
		Short: "Vendor handoff guide: shop type, files to send, checklist",
		Long: `Show what kind of vendor a part should go to, which files to prepare and
what to confirm before sending it, based on the part's current process.

Examples:
  foundry handoff PART-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.QuoteAdapter().Handoff(foundryctx.CommandContext(), args[0])
			return err
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/wire"
)

// QuoteCmd returns the quote command
func QuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [part-id]",
		Short: "Instant quote: cost, lead time and best vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.QuoteAdapter().Quote(foundryctx.CommandContext(), args[0])
			return err
		},
	}
}

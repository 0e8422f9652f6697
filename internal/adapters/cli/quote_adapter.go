package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/foundry/internal/ports/primary"
)

// QuoteAdapter translates CLI operations to QuoteService calls.
type QuoteAdapter struct {
	service primary.QuoteService
	out     io.Writer
}

// NewQuoteAdapter creates a new QuoteAdapter with the given service.
func NewQuoteAdapter(service primary.QuoteService, out io.Writer) *QuoteAdapter {
	return &QuoteAdapter{
		service: service,
		out:     out,
	}
}

// Quote prints an instant quote for a part.
func (a *QuoteAdapter) Quote(ctx context.Context, partID string) (*primary.Quote, error) {
	q, err := a.service.Quote(ctx, partID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nQuote: %s\n", q.PartID)
	fmt.Fprintf(a.out, "%s / %s × %d\n", orDash(q.Material), orDash(q.Process), q.Quantity)
	fmt.Fprintf(a.out, "  Setup:     %s\n", money(q.SetupCost))
	fmt.Fprintf(a.out, "  Unit:      %s\n", money(q.UnitCost))
	fmt.Fprintf(a.out, "  Total:     %s\n", money(q.TotalCost))
	fmt.Fprintf(a.out, "  Per part:  %s\n", money(q.CostPerPart))
	fmt.Fprintf(a.out, "  Lead time: %d days\n", q.LeadTimeDays)
	if q.TopVendor != nil {
		fmt.Fprintf(a.out, "  Vendor:    %s (%s, score %d)\n", q.TopVendor.Name, q.TopVendor.ID, q.TopVendor.Score)
	} else {
		fmt.Fprintln(a.out, "  Vendor:    none qualifies")
	}
	fmt.Fprintln(a.out)

	return q, nil
}

// Handoff prints what to send a vendor and what to confirm with them.
func (a *QuoteAdapter) Handoff(ctx context.Context, partID string) (*primary.HandoffGuide, error) {
	g, err := a.service.HandoffGuide(ctx, partID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nHandoff: %s\n", g.PartID)
	fmt.Fprintf(a.out, "%s / %s × %d\n", g.Material, orDash(g.Process), g.Quantity)
	fmt.Fprintf(a.out, "  Send to: %s\n", g.VendorType)
	fmt.Fprintf(a.out, "  Files:   %s\n", strings.Join(g.FileTypes, ", "))
	fmt.Fprintln(a.out, "  Checklist:")
	for _, item := range g.Checklist {
		fmt.Fprintf(a.out, "    [ ] %s\n", item)
	}
	fmt.Fprintln(a.out)

	return g, nil
}

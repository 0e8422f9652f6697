package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/foundry/internal/ports/primary"
)

// WhatIfAdapter translates CLI operations to WhatIfService calls.
type WhatIfAdapter struct {
	service primary.WhatIfService
	out     io.Writer
}

// NewWhatIfAdapter creates a new WhatIfAdapter with the given service.
func NewWhatIfAdapter(service primary.WhatIfService, out io.Writer) *WhatIfAdapter {
	return &WhatIfAdapter{
		service: service,
		out:     out,
	}
}

// Simulate runs a scenario and prints its DFM, cost and vendor outcome.
func (a *WhatIfAdapter) Simulate(ctx context.Context, req primary.SimulateRequest) (*primary.Scenario, error) {
	sc, err := a.service.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nWhat-if %s: %s × %d\n", sc.PartID, sc.Label, sc.Quantity)
	fmt.Fprintf(a.out, "Score:    %s (%d issues)\n", scoreLabel(sc.Score), len(sc.Findings))
	fmt.Fprintf(a.out, "Per part: %s\n", money(sc.CostPerPart))
	fmt.Fprintf(a.out, "Total:    %s\n", money(sc.TotalCost))

	if len(sc.Findings) > 0 {
		fmt.Fprintln(a.out, "\nFindings:")
		writeFindings(a.out, sc.Findings)
	}
	fmt.Fprintln(a.out, "\nVendors:")
	writeMatches(a.out, sc.Vendors)

	if sc.Committed {
		fmt.Fprintf(a.out, "\n✓ Scenario committed to %s\n", sc.PartID)
	} else {
		fmt.Fprintln(a.out, color.New(color.FgCyan).Sprint("\nPreview only. Re-run with --commit to apply."))
	}

	return sc, nil
}

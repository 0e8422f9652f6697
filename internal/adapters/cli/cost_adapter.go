package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/foundry/internal/ports/primary"
)

// CostAdapter translates CLI operations to CostService calls.
type CostAdapter struct {
	service primary.CostService
	out     io.Writer
}

// NewCostAdapter creates a new CostAdapter with the given service.
func NewCostAdapter(service primary.CostService, out io.Writer) *CostAdapter {
	return &CostAdapter{
		service: service,
		out:     out,
	}
}

// EstimatePart estimates cost for a stored part, optionally at another quantity.
func (a *CostAdapter) EstimatePart(ctx context.Context, partID string, quantity *int) (*primary.CostEstimate, error) {
	est, err := a.service.EstimatePart(ctx, primary.EstimatePartRequest{
		PartID:   partID,
		Quantity: quantity,
	})
	if err != nil {
		return nil, err
	}
	a.printEstimate(est)
	return est, nil
}

// Estimate estimates cost for an ad-hoc process, material and quantity.
func (a *CostAdapter) Estimate(ctx context.Context, process, material string, quantity int) (*primary.CostEstimate, error) {
	est, err := a.service.Estimate(ctx, process, material, quantity)
	if err != nil {
		return nil, err
	}
	a.printEstimate(est)
	return est, nil
}

// Curve prints cost per part across the standard quantity tiers.
func (a *CostAdapter) Curve(ctx context.Context, process, material string) ([]*primary.CostCurvePoint, error) {
	points, err := a.service.Curve(ctx, process, material)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Cost curve: %s / %s\n", orDash(material), orDash(process))
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "QTY\tCOST/PART")
	fmt.Fprintln(w, "---\t---------")
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%s\n", p.Quantity, money(p.CostPerPart))
	}
	w.Flush()

	return points, nil
}

// Tooling prints tooling advice for a process at a quantity.
func (a *CostAdapter) Tooling(ctx context.Context, process string, quantity int) (*primary.ToolingAdvice, error) {
	advice, err := a.service.AdviseTooling(ctx, process, quantity)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Tooling for %s × %d\n", advice.Process, advice.Quantity)
	fmt.Fprintf(a.out, "  Tool:       %s\n", advice.ToolType)
	fmt.Fprintf(a.out, "  Complexity: %s\n", advice.Complexity)
	fmt.Fprintf(a.out, "  Cost level: %s\n", advice.CostLevel)
	fmt.Fprintf(a.out, "  Advice:     %s\n", advice.Recommendations)

	return advice, nil
}

func (a *CostAdapter) printEstimate(est *primary.CostEstimate) {
	if est.PartID != "" {
		fmt.Fprintf(a.out, "\nCost estimate: %s\n", est.PartID)
	} else {
		fmt.Fprintln(a.out, "\nCost estimate")
	}
	fmt.Fprintf(a.out, "%s / %s × %d (%s)\n", orDash(est.Material), orDash(est.Process), est.Quantity, est.Bucket)
	fmt.Fprintf(a.out, "  Setup:      %s\n", money(est.SetupCost))
	fmt.Fprintf(a.out, "  Unit:       %s\n", money(est.UnitCost))
	fmt.Fprintf(a.out, "  Total:      %s\n", money(est.TotalCost))
	fmt.Fprintf(a.out, "  Per part:   %s\n\n", money(est.CostPerPart))
}

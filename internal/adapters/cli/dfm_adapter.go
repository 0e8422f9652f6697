package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/foundry/internal/ports/primary"
)

// DFMAdapter translates CLI operations to DFMService calls.
type DFMAdapter struct {
	service primary.DFMService
	out     io.Writer
}

// NewDFMAdapter creates a new DFMAdapter with the given service.
func NewDFMAdapter(service primary.DFMService, out io.Writer) *DFMAdapter {
	return &DFMAdapter{
		service: service,
		out:     out,
	}
}

// EvaluatePart runs DFM on a stored part and persists the result.
func (a *DFMAdapter) EvaluatePart(ctx context.Context, partID string) (*primary.DFMReport, error) {
	report, err := a.service.EvaluatePart(ctx, partID)
	if err != nil {
		return nil, err
	}
	a.printReport(report)
	return report, nil
}

// Evaluate runs DFM on an ad-hoc material and process pair.
func (a *DFMAdapter) Evaluate(ctx context.Context, material, process string) (*primary.DFMReport, error) {
	report, err := a.service.Evaluate(ctx, material, process)
	if err != nil {
		return nil, err
	}
	a.printReport(report)
	return report, nil
}

func (a *DFMAdapter) printReport(report *primary.DFMReport) {
	title := report.PartID
	if title == "" {
		title = "ad-hoc"
	}
	fmt.Fprintf(a.out, "\nDFM report: %s\n", title)
	fmt.Fprintf(a.out, "%s / %s (rules: %s)\n", orDash(report.Material), orDash(report.Process), report.RuleSet)
	fmt.Fprintf(a.out, "Score: %s\n\n", scoreLabel(report.Score))

	if len(report.Findings) == 0 {
		fmt.Fprintln(a.out, "✓ No manufacturability issues found")
		return
	}
	writeFindings(a.out, report.Findings)
	fmt.Fprintln(a.out)
}

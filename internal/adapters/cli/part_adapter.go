package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/foundry/internal/ports/primary"
)

// PartAdapter is a thin adapter that translates CLI operations to PartService calls.
type PartAdapter struct {
	service primary.PartService
	out     io.Writer
}

// NewPartAdapter creates a new PartAdapter with the given service.
func NewPartAdapter(service primary.PartService, out io.Writer) *PartAdapter {
	return &PartAdapter{
		service: service,
		out:     out,
	}
}

// SubmitIntent records the design intent of a part, creating it if needed.
func (a *PartAdapter) SubmitIntent(ctx context.Context, partID string, intent primary.DesignIntent) (*primary.Part, error) {
	part, err := a.service.SubmitDesignIntent(ctx, primary.SubmitDesignIntentRequest{
		PartID: partID,
		Intent: intent,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Design intent recorded for %s\n", part.ID)
	if part.Intent.UseCase != "" {
		fmt.Fprintf(a.out, "  Use case: %s\n", part.Intent.UseCase)
	}
	return part, nil
}

// Select changes the material, process or quantity of a part.
func (a *PartAdapter) Select(ctx context.Context, req primary.SelectConfigurationRequest) (*primary.Part, error) {
	part, err := a.service.SelectConfiguration(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Part %s configured: %s / %s × %d\n", part.ID, orDash(part.Material), orDash(part.Process), part.Quantity)
	if part.Stale {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("  DFM score is stale, run `foundry dfm "+part.ID+"` to refresh"))
	}
	return part, nil
}

// Show displays details for a single part.
func (a *PartAdapter) Show(ctx context.Context, partID string) (*primary.Part, error) {
	part, err := a.service.GetPart(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	fmt.Fprintf(a.out, "\nPart: %s\n", part.ID)
	fmt.Fprintf(a.out, "Material: %s\n", orDash(part.Material))
	fmt.Fprintf(a.out, "Process:  %s\n", orDash(part.Process))
	fmt.Fprintf(a.out, "Quantity: %d\n", part.Quantity)
	score := scoreLabel(part.Score)
	if part.Stale {
		score += color.New(color.FgYellow).Sprint(" (stale)")
	}
	fmt.Fprintf(a.out, "Score:    %s\n", score)
	fmt.Fprintf(a.out, "Revision: %d\n", part.Revision)

	intent := part.Intent
	if intent != (primary.DesignIntent{}) {
		fmt.Fprintln(a.out, "\nDesign intent:")
		fmt.Fprintf(a.out, "  Use case:    %s\n", orDash(intent.UseCase))
		fmt.Fprintf(a.out, "  Environment: %s\n", orDash(intent.Environment))
		fmt.Fprintf(a.out, "  Scale:       %s\n", orDash(intent.ProductionScale))
		fmt.Fprintf(a.out, "  Load:        %s\n", orDash(intent.LoadCondition))
		fmt.Fprintf(a.out, "  Finish:      %s\n", orDash(intent.FinishRequirement))
	}

	if len(part.Findings) > 0 {
		fmt.Fprintln(a.out, "\nFindings:")
		writeFindings(a.out, part.Findings)
	}
	fmt.Fprintln(a.out)

	return part, nil
}

// List lists all parts.
func (a *PartAdapter) List(ctx context.Context) ([]*primary.Part, error) {
	parts, err := a.service.ListParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	if len(parts) == 0 {
		fmt.Fprintln(a.out, "No parts found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Start with a design intent:")
		fmt.Fprintln(a.out, "  foundry part intent PART-001 --use-case enclosure")
		return parts, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tMATERIAL\tPROCESS\tQTY\tSCORE")
	fmt.Fprintln(w, "--\t--------\t-------\t---\t-----")
	for _, p := range parts {
		score := fmt.Sprintf("%d", p.Score)
		if p.Stale {
			score += " (stale)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.ID, orDash(p.Material), orDash(p.Process), p.Quantity, score)
	}
	w.Flush()

	return parts, nil
}

// Activity prints the most recent activity for a part.
func (a *PartAdapter) Activity(ctx context.Context, partID string, limit int) ([]*primary.ActivityEntry, error) {
	entries, err := a.service.ListActivity(ctx, partID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintf(a.out, "No activity recorded for %s.\n", partID)
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tACTOR\tDETAIL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.CreatedAt, e.Action, orDash(e.Actor), e.Detail)
	}
	w.Flush()

	return entries, nil
}

func writeFindings(out io.Writer, findings []*primary.Finding) {
	for _, f := range findings {
		fmt.Fprintf(out, "  %s [%s] %s\n", f.ID, severityLabel(f.Severity), f.IssueType)
		fmt.Fprintf(out, "      %s\n", f.Description)
		if f.SuggestedFix != "" {
			fmt.Fprintf(out, "      → %s\n", f.SuggestedFix)
		}
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/foundry/internal/ports/primary"
)

// VersionAdapter translates CLI operations to VersionService calls.
type VersionAdapter struct {
	service primary.VersionService
	out     io.Writer
}

// NewVersionAdapter creates a new VersionAdapter with the given service.
func NewVersionAdapter(service primary.VersionService, out io.Writer) *VersionAdapter {
	return &VersionAdapter{
		service: service,
		out:     out,
	}
}

// Snapshot freezes the current state of a part as a version.
func (a *VersionAdapter) Snapshot(ctx context.Context, req primary.CreateSnapshotRequest) (*primary.TimelineEntry, error) {
	entry, err := a.service.CreateSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Snapshot %s of %s created", entry.Version, req.PartID)
	if entry.Tag != "" {
		fmt.Fprintf(a.out, " [%s]", entry.Tag)
	}
	fmt.Fprintln(a.out)
	return entry, nil
}

// Compare prints the difference between two versions.
func (a *VersionAdapter) Compare(ctx context.Context, partID, versionA, versionB string) (*primary.VersionDiff, error) {
	d, err := a.service.Compare(ctx, partID, versionA, versionB)
	if err != nil {
		return nil, err
	}

	if !d.Found {
		fmt.Fprintf(a.out, "%s: %s\n", partID, d.Message)
		return d, nil
	}

	fmt.Fprintf(a.out, "\n%s: %s [%s] → %s [%s]\n", partID, d.VersionA, d.TagA, d.VersionB, d.TagB)
	fmt.Fprintf(a.out, "  Score:    %d → %d (%+d, %s)\n", d.ScoreA, d.ScoreB, d.ScoreDelta, directionLabel(d.ScoreDirection))
	fmt.Fprintf(a.out, "  Issues:   %d → %d (%+d)\n", d.IssuesA, d.IssuesB, d.IssuesDelta)
	fmt.Fprintf(a.out, "  Material: %s → %s\n", orDash(d.MaterialA), orDash(d.MaterialB))
	fmt.Fprintf(a.out, "  Process:  %s → %s\n", orDash(d.ProcessA), orDash(d.ProcessB))
	fmt.Fprintf(a.out, "  Cost:     %s → %s (%+.2f)\n", money(d.CostPerPartA), money(d.CostPerPartB), d.CostDelta)
	if len(d.FixesApplied) > 0 {
		fmt.Fprintf(a.out, "  Fixes:    %s\n", strings.Join(d.FixesApplied, ", "))
	}
	fmt.Fprintln(a.out)

	return d, nil
}

// Timeline lists a part's snapshots in version order.
func (a *VersionAdapter) Timeline(ctx context.Context, partID string) ([]*primary.TimelineEntry, error) {
	entries, err := a.service.Timeline(ctx, partID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintf(a.out, "No snapshots for %s.\n", partID)
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Take one:")
		fmt.Fprintf(a.out, "  foundry version snapshot %s --tag Prototype\n", partID)
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VERSION\tTAG\tMATERIAL\tPROCESS\tSCORE\tCOST/PART\tCREATED")
	fmt.Fprintln(w, "-------\t---\t--------\t-------\t-----\t---------\t-------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", e.Version, e.Tag, orDash(e.Material), orDash(e.Process), e.Score, money(e.CostPerPart), e.CreatedAt)
	}
	w.Flush()

	return entries, nil
}

// Tag labels a version.
func (a *VersionAdapter) Tag(ctx context.Context, partID, version, tag string) error {
	if err := a.service.TagVersion(ctx, partID, version, tag); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Tagged %s %s as %s\n", partID, version, tag)
	return nil
}

// SuggestTag prints the proposed milestone tag for a part.
func (a *VersionAdapter) SuggestTag(ctx context.Context, partID string) (*primary.TagSuggestion, error) {
	suggestion, err := a.service.SuggestTag(ctx, partID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Suggested tag for %s: %s (score %d, quantity %d)\n",
		suggestion.PartID, suggestion.Tag, suggestion.Score, suggestion.Quantity)
	if suggestion.Stale {
		fmt.Fprintln(a.out, "⚠ Score predates the current selection. Re-run: foundry dfm evaluate "+suggestion.PartID)
	}
	return suggestion, nil
}

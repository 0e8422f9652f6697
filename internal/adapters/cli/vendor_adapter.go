package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/foundry/internal/ports/primary"
)

// VendorAdapter translates CLI operations to VendorService calls.
type VendorAdapter struct {
	service primary.VendorService
	out     io.Writer
}

// NewVendorAdapter creates a new VendorAdapter with the given service.
func NewVendorAdapter(service primary.VendorService, out io.Writer) *VendorAdapter {
	return &VendorAdapter{
		service: service,
		out:     out,
	}
}

// RankForPart shortlists vendors for a stored part.
func (a *VendorAdapter) RankForPart(ctx context.Context, partID string) ([]*primary.VendorMatch, error) {
	matches, err := a.service.RankForPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	writeMatches(a.out, matches)
	return matches, nil
}

// Rank shortlists vendors for an ad-hoc request.
func (a *VendorAdapter) Rank(ctx context.Context, req primary.RankVendorsRequest) ([]*primary.VendorMatch, error) {
	matches, err := a.service.Rank(ctx, req)
	if err != nil {
		return nil, err
	}
	writeMatches(a.out, matches)
	return matches, nil
}

// List lists the vendor pool.
func (a *VendorAdapter) List(ctx context.Context) ([]*primary.Vendor, error) {
	vendors, err := a.service.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	if len(vendors) == 0 {
		fmt.Fprintln(a.out, "No vendors found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Load the starter pool:")
		fmt.Fprintln(a.out, "  foundry init")
		return vendors, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tTIER\tMOQ\tPROCESSES")
	fmt.Fprintln(w, "--\t----\t----\t----\t---\t---------")
	for _, v := range vendors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", v.ID, v.Name, orDash(v.City), v.Tier, v.MinOrderQty, strings.Join(v.Processes, ", "))
	}
	w.Flush()

	return vendors, nil
}

// Add adds a vendor to the pool.
func (a *VendorAdapter) Add(ctx context.Context, req primary.AddVendorRequest) (*primary.Vendor, error) {
	v, err := a.service.AddVendor(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Added vendor %s: %s (tier %d)\n", v.ID, v.Name, v.Tier)
	return v, nil
}

func writeMatches(out io.Writer, matches []*primary.VendorMatch) {
	if len(matches) == 0 {
		fmt.Fprintln(out, "No qualifying vendors.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "RANK\tVENDOR\tCITY\tTIER\tSCORE\tNOTES")
	fmt.Fprintln(w, "----\t------\t----\t----\t-----\t-----")
	for i, m := range matches {
		fmt.Fprintf(w, "%d\t%s (%s)\t%s\t%d\t%d\t%s\n", i+1, m.Name, m.ID, orDash(m.City), m.Tier, m.Score, m.Notes)
	}
	w.Flush()
}

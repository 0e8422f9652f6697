package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/foundry/internal/ports/primary"
)

// MaterialAdapter translates CLI operations to MaterialService calls.
type MaterialAdapter struct {
	service primary.MaterialService
	out     io.Writer
}

// NewMaterialAdapter creates a new MaterialAdapter with the given service.
func NewMaterialAdapter(service primary.MaterialService, out io.Writer) *MaterialAdapter {
	return &MaterialAdapter{
		service: service,
		out:     out,
	}
}

// List lists the material catalog.
func (a *MaterialAdapter) List(ctx context.Context) ([]*primary.Material, error) {
	materials, err := a.service.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	writeMaterials(a.out, materials)
	return materials, nil
}

// Show displays a single material.
func (a *MaterialAdapter) Show(ctx context.Context, name string) (*primary.Material, error) {
	m, err := a.service.GetMaterial(ctx, name)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nMaterial: %s\n", m.Name)
	fmt.Fprintf(a.out, "Category:  %s\n", orDash(m.Category))
	fmt.Fprintf(a.out, "Processes: %s\n", strings.Join(m.ProcessCompatibility, ", "))
	fmt.Fprintf(a.out, "Good for:  %s\n", strings.Join(m.SuitabilityTags, ", "))
	fmt.Fprintf(a.out, "Min wall:  %g mm\n", m.MinWallThicknessMM)
	fmt.Fprintf(a.out, "Min draft: %g°\n", m.MinDraftAngleDeg)
	fmt.Fprintln(a.out)

	return m, nil
}

// Recommend lists materials fit for a process and use case.
func (a *MaterialAdapter) Recommend(ctx context.Context, process, useCase string) ([]*primary.Material, error) {
	materials, err := a.service.Recommend(ctx, process, useCase)
	if err != nil {
		return nil, err
	}

	if len(materials) == 0 {
		fmt.Fprintf(a.out, "No strong material matches for %q via %s.\n", useCase, process)
		return materials, nil
	}
	writeMaterials(a.out, materials)
	return materials, nil
}

func writeMaterials(out io.Writer, materials []*primary.Material) {
	if len(materials) == 0 {
		fmt.Fprintln(out, "No materials found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tPROCESSES")
	fmt.Fprintln(w, "----\t--------\t---------")
	for _, m := range materials {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, orDash(m.Category), strings.Join(m.ProcessCompatibility, ", "))
	}
	w.Flush()
}

// Package handoff builds the vendor handoff guide for a part: which kind of
// shop to send it to, which files to prepare and what to confirm first.
// This is part of the Functional Core - no I/O, only pure functions.
package handoff

import "strings"

// UnspecifiedMaterial is reported when the part has no material yet.
const UnspecifiedMaterial = "unspecified"

// Guide is the handoff package for one part.
type Guide struct {
	VendorType string
	FileTypes  []string
	Checklist  []string
	Material   string
	Process    string
	Quantity   int
}

// baseChecklist applies to every process except additive, which replaces it.
var baseChecklist = []string{"Confirm tolerances", "Specify material grade", "Define surface finish"}

// Build returns the guide for a selection. Processes are matched by
// substring, first match wins; anything unmatched goes to a general
// fabricator.
func Build(process, material string, quantity int) Guide {
	g := Guide{
		VendorType: "general fabricator",
		FileTypes:  []string{"STEP", "2D PDF"},
		Checklist:  withBase(),
		Material:   material,
		Process:    process,
		Quantity:   quantity,
	}
	if strings.TrimSpace(g.Material) == "" {
		g.Material = UnspecifiedMaterial
	}
	if g.Quantity <= 0 {
		g.Quantity = 1
	}

	p := strings.ToLower(process)
	switch {
	case strings.Contains(p, "injection"):
		g.VendorType = "plastic injection molding vendor"
		g.FileTypes = []string{"STEP", "2D drawing", "Material spec sheet"}
		g.Checklist = withBase("Confirm number of cavities", "Confirm shrinkage allowance")
	case strings.Contains(p, "cnc"):
		g.VendorType = "CNC machining job shop"
		g.FileTypes = []string{"STEP", "PDF with tolerances"}
		g.Checklist = withBase("Include thread callouts", "Indicate critical dimensions")
	case strings.Contains(p, "3d print"), strings.Contains(p, "fdm"):
		g.VendorType = "Rapid prototyping/3D print service"
		g.FileTypes = []string{"STL", "Slicer-ready G-code"}
		g.Checklist = []string{"Confirm layer height", "Select print orientation"}
	case strings.Contains(p, "casting"):
		g.VendorType = "metal casting foundry"
		g.FileTypes = []string{"STEP", "Drafted drawing"}
		g.Checklist = withBase("Include draft angles", "Specify post-machining steps")
	}
	return g
}

func withBase(extra ...string) []string {
	out := make([]string, 0, len(baseChecklist)+len(extra))
	out = append(out, baseChecklist...)
	return append(out, extra...)
}

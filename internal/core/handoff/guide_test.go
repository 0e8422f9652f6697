package handoff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		process       string
		wantVendor    string
		wantFiles     []string
		wantChecklist []string
	}{
		{
			name:          "injection molding",
			process:       "Injection Molding",
			wantVendor:    "plastic injection molding vendor",
			wantFiles:     []string{"STEP", "2D drawing", "Material spec sheet"},
			wantChecklist: []string{"Confirm tolerances", "Specify material grade", "Define surface finish", "Confirm number of cavities", "Confirm shrinkage allowance"},
		},
		{
			name:          "cnc",
			process:       "CNC Machining",
			wantVendor:    "CNC machining job shop",
			wantFiles:     []string{"STEP", "PDF with tolerances"},
			wantChecklist: []string{"Confirm tolerances", "Specify material grade", "Define surface finish", "Include thread callouts", "Indicate critical dimensions"},
		},
		{
			name:          "fdm replaces the base checklist",
			process:       "FDM",
			wantVendor:    "Rapid prototyping/3D print service",
			wantFiles:     []string{"STL", "Slicer-ready G-code"},
			wantChecklist: []string{"Confirm layer height", "Select print orientation"},
		},
		{
			name:          "3d printing",
			process:       "3D Printing",
			wantVendor:    "Rapid prototyping/3D print service",
			wantFiles:     []string{"STL", "Slicer-ready G-code"},
			wantChecklist: []string{"Confirm layer height", "Select print orientation"},
		},
		{
			name:          "die casting",
			process:       "Die Casting",
			wantVendor:    "metal casting foundry",
			wantFiles:     []string{"STEP", "Drafted drawing"},
			wantChecklist: []string{"Confirm tolerances", "Specify material grade", "Define surface finish", "Include draft angles", "Specify post-machining steps"},
		},
		{
			name:          "unknown process falls back",
			process:       "Sheet Metal",
			wantVendor:    "general fabricator",
			wantFiles:     []string{"STEP", "2D PDF"},
			wantChecklist: []string{"Confirm tolerances", "Specify material grade", "Define surface finish"},
		},
		{
			name:          "no process",
			process:       "",
			wantVendor:    "general fabricator",
			wantFiles:     []string{"STEP", "2D PDF"},
			wantChecklist: []string{"Confirm tolerances", "Specify material grade", "Define surface finish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.process, "ABS Plastic", 100)
			if g.VendorType != tt.wantVendor {
				t.Errorf("VendorType = %q, want %q", g.VendorType, tt.wantVendor)
			}
			if diff := cmp.Diff(tt.wantFiles, g.FileTypes); diff != "" {
				t.Errorf("FileTypes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantChecklist, g.Checklist); diff != "" {
				t.Errorf("Checklist mismatch (-want +got):\n%s", diff)
			}
			if g.Process != tt.process {
				t.Errorf("Process = %q, want the selection echoed back", g.Process)
			}
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	g := Build("CNC Machining", " ", 0)
	if g.Material != UnspecifiedMaterial {
		t.Errorf("Material = %q, want %q", g.Material, UnspecifiedMaterial)
	}
	if g.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", g.Quantity)
	}
}

func TestBuild_GuidesDoNotShareChecklists(t *testing.T) {
	a := Build("CNC Machining", "Aluminum Metal", 10)
	a.Checklist[0] = "mutated"

	b := Build("Sheet Metal", "Steel Metal", 10)
	if b.Checklist[0] != "Confirm tolerances" {
		t.Errorf("base checklist leaked a mutation: %v", b.Checklist)
	}
}

package cost

import "testing"

func TestAdviseTooling(t *testing.T) {
	tests := []struct {
		name           string
		process        string
		quantity       int
		wantToolType   string
		wantComplexity string
		wantCostLevel  string
	}{
		{"small injection run", "Injection Molding", 500, "2-plate mold", "medium", "$$$"},
		{"mid injection run", "injection molding", 2000, "2-plate mold", "medium", "$$$"},
		{"large injection run", "injection molding", 10000, "multi-cavity hardened mold", "high", "$$$$"},
		{"die casting", "Die Casting", 100, "multi-cavity steel die", "high", "$$$$$"},
		{"fdm", "FDM", 1, "no tooling", "very low", "$"},
		{"3d printing", "3D Printing", 1, "no tooling", "very low", "$"},
		{"unknown", "waterjet", 10, "tooling info unavailable", "unknown", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdviseTooling(tt.process, tt.quantity)
			if got.ToolType != tt.wantToolType {
				t.Errorf("ToolType = %q, want %q", got.ToolType, tt.wantToolType)
			}
			if got.Complexity != tt.wantComplexity {
				t.Errorf("Complexity = %q, want %q", got.Complexity, tt.wantComplexity)
			}
			if got.CostLevel != tt.wantCostLevel {
				t.Errorf("CostLevel = %q, want %q", got.CostLevel, tt.wantCostLevel)
			}
		})
	}
}

func TestAdviseTooling_SideActionAboveThousand(t *testing.T) {
	if got := AdviseTooling("injection", 1000).Recommendations; got != "Simple ejector system likely sufficient" {
		t.Errorf("unexpected recommendation at 1000: %q", got)
	}
	if got := AdviseTooling("injection", 1001).Recommendations; got != "Consider side-action cores for undercuts" {
		t.Errorf("unexpected recommendation at 1001: %q", got)
	}
}

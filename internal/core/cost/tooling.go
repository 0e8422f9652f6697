package cost

import "strings"

// ToolingAdvice is a coarse tooling recommendation for a process and volume.
type ToolingAdvice struct {
	ToolType        string
	Complexity      string
	CostLevel       string // relative, 1-5 "$" signs or "?"
	Recommendations string
}

// Volume breakpoints for injection tooling.
const (
	multiCavityQuantity = 5000
	sideActionQuantity  = 1000
)

// AdviseTooling returns tooling guidance. Unknown processes get an
// "unavailable" answer rather than an error.
func AdviseTooling(process string, quantity int) ToolingAdvice {
	process = strings.ToLower(process)
	qty := NormalizeQuantity(quantity)

	switch {
	case strings.Contains(process, "injection"):
		advice := ToolingAdvice{
			ToolType:        "2-plate mold",
			Complexity:      "medium",
			CostLevel:       "$$$",
			Recommendations: "Simple ejector system likely sufficient",
		}
		if qty > multiCavityQuantity {
			advice.ToolType = "multi-cavity hardened mold"
			advice.Complexity = "high"
			advice.CostLevel = "$$$$"
		}
		if qty > sideActionQuantity {
			advice.Recommendations = "Consider side-action cores for undercuts"
		}
		return advice
	case strings.Contains(process, "die cast"):
		return ToolingAdvice{
			ToolType:        "multi-cavity steel die",
			Complexity:      "high",
			CostLevel:       "$$$$$",
			Recommendations: "Use thermal control and draft for ejection",
		}
	case strings.Contains(process, "fdm"), strings.Contains(process, "3d print"):
		return ToolingAdvice{
			ToolType:        "no tooling",
			Complexity:      "very low",
			CostLevel:       "$",
			Recommendations: "Print-ready, optimize orientation in slicer",
		}
	default:
		return ToolingAdvice{
			ToolType:        "tooling info unavailable",
			Complexity:      "unknown",
			CostLevel:       "?",
			Recommendations: "Tooling guidance not available for this process",
		}
	}
}

package primary

import "context"

// DFMService defines the primary port for design-for-manufacturing evaluation.
type DFMService interface {
	// EvaluatePart evaluates the part's current selection and persists the
	// findings and score.
	EvaluatePart(ctx context.Context, partID string) (*DFMReport, error)

	// Evaluate runs an ad-hoc evaluation without touching any part.
	Evaluate(ctx context.Context, material, process string) (*DFMReport, error)
}

// DFMReport is the outcome of one evaluation.
type DFMReport struct {
	PartID   string
	Material string
	Process  string
	RuleSet  string
	Findings []*Finding
	Score    int
}

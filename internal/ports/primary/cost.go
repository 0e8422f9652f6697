package primary

import "context"

// CostService defines the primary port for cost estimation.
type CostService interface {
	// EstimatePart estimates the part's current selection, optionally at a
	// different quantity.
	EstimatePart(ctx context.Context, req EstimatePartRequest) (*CostEstimate, error)

	// Estimate prices an arbitrary process/material/quantity.
	Estimate(ctx context.Context, process, material string, quantity int) (*CostEstimate, error)

	// Curve returns cost per part across the standard quantity tiers.
	Curve(ctx context.Context, process, material string) ([]*CostCurvePoint, error)

	// AdviseTooling returns tooling guidance for a process at a quantity.
	AdviseTooling(ctx context.Context, process string, quantity int) (*ToolingAdvice, error)
}

// EstimatePartRequest contains parameters for estimating a stored part.
type EstimatePartRequest struct {
	PartID   string
	Quantity *int // overrides the stored quantity when set
}

// CostEstimate is a priced process/material/quantity.
type CostEstimate struct {
	PartID      string
	Process     string
	Material    string
	Quantity    int
	Bucket      string
	SetupCost   float64
	UnitCost    float64
	TotalCost   float64
	CostPerPart float64
}

// CostCurvePoint is one tier of a cost curve.
type CostCurvePoint struct {
	Quantity    int
	CostPerPart float64
}

// ToolingAdvice is qualitative tooling guidance.
type ToolingAdvice struct {
	Process         string
	Quantity        int
	ToolType        string
	Complexity      string
	CostLevel       string
	Recommendations string
}

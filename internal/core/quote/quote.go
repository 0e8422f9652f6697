// Package quote composes a cost estimate and vendor shortlist into a quote.
// This is part of the Functional Core - no I/O, only pure functions.
package quote

import (
	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/vendor"
)

// Lead time policy. Fixed business rule, not configurable per process.
const (
	LeadTimeThreshold    = 500
	StandardLeadTimeDays = 7
	ExtendedLeadTimeDays = 14
)

// Quote is the combined cost and sourcing answer for a part.
type Quote struct {
	PartID       string
	Process      string
	Material     string
	Quantity     int
	SetupCost    float64
	UnitCost     float64
	TotalCost    float64
	CostPerPart  float64
	LeadTimeDays int
	TopVendor    *vendor.Match // nil when no vendor qualifies
}

// LeadTimeDays returns 7 below LeadTimeThreshold units, else 14.
func LeadTimeDays(quantity int) int {
	if cost.NormalizeQuantity(quantity) < LeadTimeThreshold {
		return StandardLeadTimeDays
	}
	return ExtendedLeadTimeDays
}

// Compose builds a quote from an estimate and a ranked shortlist.
func Compose(partID string, est cost.Estimate, ranked []vendor.Match) Quote {
	q := Quote{
		PartID:       partID,
		Process:      est.Process,
		Material:     est.Material,
		Quantity:     est.Quantity,
		SetupCost:    est.SetupCost,
		UnitCost:     est.UnitCost,
		TotalCost:    est.TotalCost,
		CostPerPart:  est.CostPerPart,
		LeadTimeDays: LeadTimeDays(est.Quantity),
	}
	if len(ranked) > 0 {
		top := ranked[0]
		q.TopVendor = &top
	}
	return q
}

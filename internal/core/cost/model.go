// Package cost contains the deterministic, process-keyed cost model.
// This is part of the Functional Core - no I/O, only pure functions.
package cost

import (
	"math"
	"strings"
)

// Bucket is a process family with a fixed setup and per-unit cost.
type Bucket struct {
	Name      string
	Keywords  []string // matched as substrings of the lower-cased process
	SetupCost float64
	UnitCost  float64
}

// Bucket names.
const (
	BucketInjection = "injection_molding"
	BucketCNC       = "cnc"
	BucketAdditive  = "additive"
	BucketGeneric   = "generic"
)

// CurveTiers are the quantities reported by Curve.
var CurveTiers = []int{1, 10, 100, 500, 1000, 5000, 10000}

// Estimate is the cost breakdown for one process/material/quantity.
// Material is carried for display only and does not affect the numbers.
type Estimate struct {
	Process     string
	Material    string
	Quantity    int
	Bucket      string
	SetupCost   float64
	UnitCost    float64
	TotalCost   float64
	CostPerPart float64
}

// CurvePoint is one tier of a cost-vs-quantity curve.
type CurvePoint struct {
	Quantity    int
	CostPerPart float64
}

// Model maps processes to buckets. Buckets are tested in order; the first
// whose keyword appears in the process wins, otherwise the fallback applies.
type Model struct {
	buckets  []Bucket
	fallback Bucket
	tiers    []int
}

// NewModel creates a model from ordered buckets, a fallback and curve tiers.
func NewModel(buckets []Bucket, fallback Bucket, tiers []int) *Model {
	return &Model{
		buckets:  append([]Bucket(nil), buckets...),
		fallback: fallback,
		tiers:    append([]int(nil), tiers...),
	}
}

// DefaultModel returns the built-in heuristic cost table.
func DefaultModel() *Model {
	return NewModel(
		[]Bucket{
			{Name: BucketInjection, Keywords: []string{"injection"}, SetupCost: 20000, UnitCost: 5},
			{Name: BucketCNC, Keywords: []string{"cnc"}, SetupCost: 500, UnitCost: 40},
			{Name: BucketAdditive, Keywords: []string{"3d print", "fdm"}, SetupCost: 0, UnitCost: 100},
		},
		Bucket{Name: BucketGeneric, SetupCost: 1000, UnitCost: 20},
		CurveTiers,
	)
}

// BucketFor returns the bucket matching process.
func (m *Model) BucketFor(process string) Bucket {
	process = strings.ToLower(process)
	for _, b := range m.buckets {
		for _, kw := range b.Keywords {
			if strings.Contains(process, kw) {
				return b
			}
		}
	}
	return m.fallback
}

// Estimate computes setup, unit, total and per-part cost.
// A quantity below 1 is treated as 1.
func (m *Model) Estimate(process, material string, quantity int) Estimate {
	qty := NormalizeQuantity(quantity)
	b := m.BucketFor(process)
	total := b.SetupCost + b.UnitCost*float64(qty)

	return Estimate{
		Process:     process,
		Material:    material,
		Quantity:    qty,
		Bucket:      b.Name,
		SetupCost:   b.SetupCost,
		UnitCost:    b.UnitCost,
		TotalCost:   total,
		CostPerPart: perPart(total, qty),
	}
}

// Curve returns per-part cost at each configured tier, in tier order.
func (m *Model) Curve(process, material string) []CurvePoint {
	b := m.BucketFor(process)
	points := make([]CurvePoint, 0, len(m.tiers))
	for _, qty := range m.tiers {
		total := b.SetupCost + b.UnitCost*float64(qty)
		points = append(points, CurvePoint{Quantity: qty, CostPerPart: perPart(total, qty)})
	}
	return points
}

// NormalizeQuantity maps absent or non-positive quantities to 1.
func NormalizeQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func perPart(total float64, qty int) float64 {
	if qty == 0 {
		return 0
	}
	return Round2(total / float64(qty))
}

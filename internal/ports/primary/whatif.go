package primary

import "context"

// WhatIfService defines the primary port for hypothetical scenarios.
type WhatIfService interface {
	// Simulate evaluates, prices and sources a hypothetical selection.
	// The part is only written when req.Commit is set.
	Simulate(ctx context.Context, req SimulateRequest) (*Scenario, error)
}

// SimulateRequest contains the hypothetical selection.
type SimulateRequest struct {
	PartID   string
	Process  string
	Material string
	Quantity *int // keeps the stored quantity when nil
	Commit   bool // persist the hypothetical selection and its DFM result
}

// Scenario is the outcome of one simulation.
type Scenario struct {
	PartID      string
	Label       string
	Process     string
	Material    string
	Quantity    int
	Score       int
	Findings    []*Finding
	CostPerPart float64
	TotalCost   float64
	Vendors     []*VendorMatch
	Committed   bool
}

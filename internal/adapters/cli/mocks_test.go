package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/example/foundry/internal/ports/primary"
)

func init() {
	// Assertions match plain text
	color.NoColor = true
}

// mockPartService implements primary.PartService for testing
type mockPartService struct {
	submitFn   func(ctx context.Context, req primary.SubmitDesignIntentRequest) (*primary.Part, error)
	selectFn   func(ctx context.Context, req primary.SelectConfigurationRequest) (*primary.Part, error)
	getFn      func(ctx context.Context, partID string) (*primary.Part, error)
	listFn     func(ctx context.Context) ([]*primary.Part, error)
	activityFn func(ctx context.Context, partID string, limit int) ([]*primary.ActivityEntry, error)

	lastSelectReq primary.SelectConfigurationRequest
}

func (m *mockPartService) SubmitDesignIntent(ctx context.Context, req primary.SubmitDesignIntentRequest) (*primary.Part, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, req)
	}
	return &primary.Part{ID: req.PartID, Quantity: 1, Intent: req.Intent, Stale: true}, nil
}

func (m *mockPartService) SelectConfiguration(ctx context.Context, req primary.SelectConfigurationRequest) (*primary.Part, error) {
	m.lastSelectReq = req
	if m.selectFn != nil {
		return m.selectFn(ctx, req)
	}
	return &primary.Part{ID: req.PartID, Quantity: 1}, nil
}

func (m *mockPartService) GetPart(ctx context.Context, partID string) (*primary.Part, error) {
	if m.getFn != nil {
		return m.getFn(ctx, partID)
	}
	return &primary.Part{ID: partID, Quantity: 1}, nil
}

func (m *mockPartService) ListParts(ctx context.Context) ([]*primary.Part, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*primary.Part{}, nil
}

func (m *mockPartService) ListActivity(ctx context.Context, partID string, limit int) ([]*primary.ActivityEntry, error) {
	if m.activityFn != nil {
		return m.activityFn(ctx, partID, limit)
	}
	return nil, nil
}

// mockDFMService implements primary.DFMService for testing
type mockDFMService struct {
	evaluatePartFn func(ctx context.Context, partID string) (*primary.DFMReport, error)
	evaluateFn     func(ctx context.Context, material, process string) (*primary.DFMReport, error)
}

func (m *mockDFMService) EvaluatePart(ctx context.Context, partID string) (*primary.DFMReport, error) {
	return m.evaluatePartFn(ctx, partID)
}

func (m *mockDFMService) Evaluate(ctx context.Context, material, process string) (*primary.DFMReport, error) {
	return m.evaluateFn(ctx, material, process)
}

// mockCostService implements primary.CostService for testing
type mockCostService struct {
	estimatePartFn func(ctx context.Context, req primary.EstimatePartRequest) (*primary.CostEstimate, error)
	estimateFn     func(ctx context.Context, process, material string, quantity int) (*primary.CostEstimate, error)
	curveFn        func(ctx context.Context, process, material string) ([]*primary.CostCurvePoint, error)
	toolingFn      func(ctx context.Context, process string, quantity int) (*primary.ToolingAdvice, error)
}

func (m *mockCostService) EstimatePart(ctx context.Context, req primary.EstimatePartRequest) (*primary.CostEstimate, error) {
	return m.estimatePartFn(ctx, req)
}

func (m *mockCostService) Estimate(ctx context.Context, process, material string, quantity int) (*primary.CostEstimate, error) {
	return m.estimateFn(ctx, process, material, quantity)
}

func (m *mockCostService) Curve(ctx context.Context, process, material string) ([]*primary.CostCurvePoint, error) {
	return m.curveFn(ctx, process, material)
}

func (m *mockCostService) AdviseTooling(ctx context.Context, process string, quantity int) (*primary.ToolingAdvice, error) {
	return m.toolingFn(ctx, process, quantity)
}

// mockVendorService implements primary.VendorService for testing
type mockVendorService struct {
	rankForPartFn func(ctx context.Context, partID string) ([]*primary.VendorMatch, error)
	rankFn        func(ctx context.Context, req primary.RankVendorsRequest) ([]*primary.VendorMatch, error)
	listFn        func(ctx context.Context) ([]*primary.Vendor, error)
	addFn         func(ctx context.Context, req primary.AddVendorRequest) (*primary.Vendor, error)
}

func (m *mockVendorService) RankForPart(ctx context.Context, partID string) ([]*primary.VendorMatch, error) {
	return m.rankForPartFn(ctx, partID)
}

func (m *mockVendorService) Rank(ctx context.Context, req primary.RankVendorsRequest) ([]*primary.VendorMatch, error) {
	return m.rankFn(ctx, req)
}

func (m *mockVendorService) ListVendors(ctx context.Context) ([]*primary.Vendor, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*primary.Vendor{}, nil
}

func (m *mockVendorService) AddVendor(ctx context.Context, req primary.AddVendorRequest) (*primary.Vendor, error) {
	return m.addFn(ctx, req)
}

// mockWhatIfService implements primary.WhatIfService for testing
type mockWhatIfService struct {
	simulateFn func(ctx context.Context, req primary.SimulateRequest) (*primary.Scenario, error)
}

func (m *mockWhatIfService) Simulate(ctx context.Context, req primary.SimulateRequest) (*primary.Scenario, error) {
	return m.simulateFn(ctx, req)
}

// mockVersionService implements primary.VersionService for testing
type mockVersionService struct {
	compareFn  func(ctx context.Context, partID, a, b string) (*primary.VersionDiff, error)
	timelineFn func(ctx context.Context, partID string) ([]*primary.TimelineEntry, error)
	tagFn      func(ctx context.Context, partID, version, tag string) error
	snapshotFn func(ctx context.Context, req primary.CreateSnapshotRequest) (*primary.TimelineEntry, error)
	suggestFn  func(ctx context.Context, partID string) (*primary.TagSuggestion, error)
}

func (m *mockVersionService) Compare(ctx context.Context, partID, a, b string) (*primary.VersionDiff, error) {
	return m.compareFn(ctx, partID, a, b)
}

func (m *mockVersionService) Timeline(ctx context.Context, partID string) ([]*primary.TimelineEntry, error) {
	return m.timelineFn(ctx, partID)
}

func (m *mockVersionService) TagVersion(ctx context.Context, partID, version, tag string) error {
	return m.tagFn(ctx, partID, version, tag)
}

func (m *mockVersionService) CreateSnapshot(ctx context.Context, req primary.CreateSnapshotRequest) (*primary.TimelineEntry, error) {
	return m.snapshotFn(ctx, req)
}

func (m *mockVersionService) SuggestTag(ctx context.Context, partID string) (*primary.TagSuggestion, error) {
	return m.suggestFn(ctx, partID)
}

// mockQuoteService implements primary.QuoteService for testing
type mockQuoteService struct {
	quoteFn   func(ctx context.Context, partID string) (*primary.Quote, error)
	handoffFn func(ctx context.Context, partID string) (*primary.HandoffGuide, error)
}

func (m *mockQuoteService) Quote(ctx context.Context, partID string) (*primary.Quote, error) {
	return m.quoteFn(ctx, partID)
}

func (m *mockQuoteService) HandoffGuide(ctx context.Context, partID string) (*primary.HandoffGuide, error) {
	return m.handoffFn(ctx, partID)
}

// mockMaterialService implements primary.MaterialService for testing
type mockMaterialService struct {
	listFn      func(ctx context.Context) ([]*primary.Material, error)
	getFn       func(ctx context.Context, name string) (*primary.Material, error)
	recommendFn func(ctx context.Context, process, useCase string) ([]*primary.Material, error)
}

func (m *mockMaterialService) ListMaterials(ctx context.Context) ([]*primary.Material, error) {
	return m.listFn(ctx)
}

func (m *mockMaterialService) GetMaterial(ctx context.Context, name string) (*primary.Material, error) {
	return m.getFn(ctx, name)
}

func (m *mockMaterialService) Recommend(ctx context.Context, process, useCase string) ([]*primary.Material, error) {
	return m.recommendFn(ctx, process, useCase)
}

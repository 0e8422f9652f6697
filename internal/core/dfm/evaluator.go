// Package dfm contains the pure DFM evaluator: rule routing, material
// threshold findings and manufacturability scoring.
// This is part of the Functional Core - no I/O, only pure functions.
package dfm

import (
	"fmt"
	"strconv"

	"github.com/example/foundry/internal/core/material"
	"github.com/example/foundry/internal/core/rules"
)

// Threshold trigger points. A material only adds findings when its minimums
// are stricter than these.
const (
	WallThicknessTriggerMM = 1.2
	DraftAngleTriggerDeg   = 1.5
)

// Codes for findings derived from material thresholds.
const (
	CodeWallTooThinMaterial       = "wall-too-thin-material"
	CodeInsufficientDraftMaterial = "insufficient-draft-material"
)

// Finding is one DFM concern produced by an evaluation.
type Finding struct {
	ID           string // DFM-001, DFM-002, ... in emission order
	Code         string
	IssueType    string
	Description  string
	Severity     rules.Severity
	SuggestedFix string
}

// Result is the outcome of evaluating one material/process pair.
type Result struct {
	RuleSet  rules.RuleSetID
	Findings []Finding
	Score    int
}

// ThresholdSource resolves material thresholds. *material.Catalog satisfies it.
type ThresholdSource interface {
	Thresholds(name string) material.Thresholds
}

// Evaluator produces findings and a score for a material/process pair.
type Evaluator struct {
	router    *rules.Router
	catalog   *rules.Catalog
	materials ThresholdSource
}

// NewEvaluator creates an evaluator over injected reference data.
func NewEvaluator(router *rules.Router, catalog *rules.Catalog, materials ThresholdSource) *Evaluator {
	return &Evaluator{
		router:    router,
		catalog:   catalog,
		materials: materials,
	}
}

// Evaluate routes the pair to a rule set, appends threshold findings and scores
// the result. The finding list is never empty: unmatched pairs use the
// catalog's fallback set.
func (e *Evaluator) Evaluate(materialName, process string) Result {
	ruleSet := e.router.Route(materialName, process)

	var findings []Finding
	for _, tmpl := range e.catalog.Templates(ruleSet) {
		findings = append(findings, Finding{
			Code:         tmpl.Code,
			IssueType:    tmpl.IssueType,
			Description:  tmpl.Description,
			Severity:     tmpl.Severity,
			SuggestedFix: tmpl.SuggestedFix,
		})
	}

	findings = append(findings, ThresholdFindings(materialName, e.materials.Thresholds(materialName))...)

	for i := range findings {
		findings[i].ID = fmt.Sprintf("DFM-%03d", i+1)
	}

	return Result{
		RuleSet:  ruleSet,
		Findings: findings,
		Score:    Score(findings),
	}
}

// ThresholdFindings returns at most two findings for materials whose wall or
// draft minimums exceed the trigger points. IDs are left empty.
func ThresholdFindings(materialName string, t material.Thresholds) []Finding {
	var out []Finding
	if t.MinWallThicknessMM > WallThicknessTriggerMM {
		wall := formatNumber(t.MinWallThicknessMM)
		out = append(out, Finding{
			Code:         CodeWallTooThinMaterial,
			IssueType:    "Material Wall Thickness",
			Description:  fmt.Sprintf("Selected material (%s) requires minimum wall thickness of %s mm.", materialName, wall),
			Severity:     rules.SeverityHigh,
			SuggestedFix: fmt.Sprintf("Increase wall thickness to ≥ %s mm.", wall),
		})
	}
	if t.MinDraftAngleDeg > DraftAngleTriggerDeg {
		draft := formatNumber(t.MinDraftAngleDeg)
		out = append(out, Finding{
			Code:         CodeInsufficientDraftMaterial,
			IssueType:    "Material Draft Angle",
			Description:  fmt.Sprintf("%s typically needs %s° draft for ejection.", materialName, draft),
			Severity:     rules.SeverityMedium,
			SuggestedFix: fmt.Sprintf("Add or increase draft angle to at least %s°.", draft),
		})
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

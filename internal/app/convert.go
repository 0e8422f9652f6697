package app

import (
	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/dfm"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/vendor"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// applyEvaluation stores a DFM result on the record along with the
// selection it was computed for.
func applyEvaluation(rec *secondary.PartRecord, result dfm.Result) {
	rec.Findings = findingsToRecords(result.Findings)
	rec.Score = result.Score
	rec.Evaluated = true
	rec.EvaluatedMaterial = rec.Material
	rec.EvaluatedProcess = rec.Process
}

func findingsToRecords(findings []dfm.Finding) []secondary.FindingRecord {
	out := make([]secondary.FindingRecord, len(findings))
	for i, f := range findings {
		out[i] = secondary.FindingRecord{
			ID:           f.ID,
			Code:         f.Code,
			IssueType:    f.IssueType,
			Description:  f.Description,
			Severity:     string(f.Severity),
			SuggestedFix: f.SuggestedFix,
		}
	}
	return out
}

func findingsToPrimary(findings []dfm.Finding) []*primary.Finding {
	out := make([]*primary.Finding, len(findings))
	for i, f := range findings {
		out[i] = &primary.Finding{
			ID:           f.ID,
			Code:         f.Code,
			IssueType:    f.IssueType,
			Description:  f.Description,
			Severity:     string(f.Severity),
			SuggestedFix: f.SuggestedFix,
		}
	}
	return out
}

func recordToPart(rec *secondary.PartRecord) *primary.Part {
	findings := make([]*primary.Finding, len(rec.Findings))
	for i, f := range rec.Findings {
		findings[i] = &primary.Finding{
			ID:           f.ID,
			Code:         f.Code,
			IssueType:    f.IssueType,
			Description:  f.Description,
			Severity:     f.Severity,
			SuggestedFix: f.SuggestedFix,
		}
	}
	return &primary.Part{
		ID:       rec.ID,
		Material: rec.Material,
		Process:  rec.Process,
		Quantity: rec.Quantity,
		Score:    rec.Score,
		Findings: findings,
		Stale:    recordStale(rec),
		Intent: primary.DesignIntent{
			UseCase:           rec.UseCase,
			Environment:       rec.Environment,
			ProductionScale:   rec.ProductionScale,
			LoadCondition:     rec.LoadCondition,
			FinishRequirement: rec.FinishRequirement,
		},
		Revision:  rec.Revision,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func estimateToPrimary(partID string, est cost.Estimate) *primary.CostEstimate {
	return &primary.CostEstimate{
		PartID:      partID,
		Process:     est.Process,
		Material:    est.Material,
		Quantity:    est.Quantity,
		Bucket:      est.Bucket,
		SetupCost:   est.SetupCost,
		UnitCost:    est.UnitCost,
		TotalCost:   est.TotalCost,
		CostPerPart: est.CostPerPart,
	}
}

func vendorRecordToCandidate(r *secondary.VendorRecord) vendor.Candidate {
	return vendor.Candidate{
		VendorID:    r.ID,
		Name:        r.Name,
		City:        r.City,
		Tier:        r.Tier,
		Processes:   r.Processes,
		Materials:   r.Materials,
		MinOrderQty: r.MinOrderQty,
		Contact:     r.Contact,
	}
}

func vendorRecordToPrimary(r *secondary.VendorRecord) *primary.Vendor {
	return &primary.Vendor{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Tier:        r.Tier,
		Processes:   r.Processes,
		Materials:   r.Materials,
		MinOrderQty: r.MinOrderQty,
		Contact:     r.Contact,
	}
}

func matchToPrimary(m vendor.Match) *primary.VendorMatch {
	return &primary.VendorMatch{
		Vendor: primary.Vendor{
			ID:          m.VendorID,
			Name:        m.Name,
			City:        m.City,
			Tier:        m.Tier,
			Processes:   m.Processes,
			Materials:   m.Materials,
			MinOrderQty: m.MinOrderQty,
			Contact:     m.Contact,
		},
		Score: m.Score,
		Notes: m.Notes,
	}
}

func matchesToPrimary(matches []vendor.Match) []*primary.VendorMatch {
	out := make([]*primary.VendorMatch, len(matches))
	for i, m := range matches {
		out[i] = matchToPrimary(m)
	}
	return out
}

// recordStale reports whether the stored score predates the current selection.
func recordStale(rec *secondary.PartRecord) bool {
	return corepart.IsStale(
		corepart.Selection{Material: rec.Material, Process: rec.Process},
		corepart.Selection{Material: rec.EvaluatedMaterial, Process: rec.EvaluatedProcess},
		rec.Evaluated,
	)
}

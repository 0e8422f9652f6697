package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/foundry/internal/ports/secondary"
)

func newTestDFMService() (*DFMServiceImpl, *mockPartRepository, *mockActivityLog) {
	parts := newMockPartRepository()
	activity := newMockActivityLog()
	return NewDFMService(parts, activity, testEvaluator(), NewPartLocks(), testLogger()), parts, activity
}

func TestEvaluatePart_PersistsFindingsAndScore(t *testing.T) {
	service, parts, activity := newTestDFMService()
	parts.seed(secondary.PartRecord{ID: "PART-001", Material: "Plastic", Process: "Injection Molding", Quantity: 100})

	report, err := service.EvaluatePart(context.Background(), "PART-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Score != 70 {
		t.Errorf("expected score 70, got %d", report.Score)
	}
	if report.RuleSet != "injection_molding" {
		t.Errorf("expected injection_molding, got %q", report.RuleSet)
	}

	stored := parts.stored("PART-001")
	if stored.Score != 70 || len(stored.Findings) != 2 {
		t.Errorf("expected stored score 70 with 2 findings, got score %d with %d", stored.Score, len(stored.Findings))
	}
	gotIDs := []string{stored.Findings[0].ID, stored.Findings[1].ID}
	if diff := cmp.Diff([]string{"DFM-001", "DFM-002"}, gotIDs); diff != "" {
		t.Errorf("finding IDs mismatch (-want +got):\n%s", diff)
	}
	if !stored.Evaluated || stored.EvaluatedMaterial != "Plastic" || stored.EvaluatedProcess != "Injection Molding" {
		t.Errorf("expected evaluated selection recorded, got %+v", stored)
	}
	if stored.Revision != 2 {
		t.Errorf("expected revision 2, got %d", stored.Revision)
	}
	if got := activity.actions(); len(got) != 1 || got[0] != ActionDFMEvaluated {
		t.Errorf("expected one %s entry, got %v", ActionDFMEvaluated, got)
	}
}

func TestEvaluatePart_NotFound(t *testing.T) {
	service, _, activity := newTestDFMService()

	_, err := service.EvaluatePart(context.Background(), "PART-404")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(activity.actions()) != 0 {
		t.Error("expected no activity for a missing part")
	}
}

func TestEvaluatePart_RevisionConflictSurfaces(t *testing.T) {
	service, parts, activity := newTestDFMService()
	parts.seed(secondary.PartRecord{ID: "PART-001", Material: "Plastic", Process: "Injection Molding"})
	parts.updateErr = secondary.ErrRevisionConflict

	_, err := service.EvaluatePart(context.Background(), "PART-001")
	if !errors.Is(err, secondary.ErrRevisionConflict) {
		t.Errorf("expected ErrRevisionConflict, got %v", err)
	}
	if len(activity.actions()) != 0 {
		t.Error("expected no activity when the write fails")
	}
}

func TestEvaluatePart_UnmatchedPairFallsBack(t *testing.T) {
	service, parts, _ := newTestDFMService()
	parts.seed(secondary.PartRecord{ID: "PART-001", Material: "unobtainium", Process: "teleportation"})

	report, err := service.EvaluatePart(context.Background(), "PART-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Findings) == 0 {
		t.Error("fallback rule set must produce findings")
	}
	if report.RuleSet != "post_processing" {
		t.Errorf("expected post_processing fallback, got %q", report.RuleSet)
	}
}

func TestEvaluate_AdHocDoesNotTouchStore(t *testing.T) {
	service, parts, activity := newTestDFMService()

	report, err := service.Evaluate(context.Background(), "Plastic", "Injection Molding")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Score != 70 || report.PartID != "" {
		t.Errorf("unexpected report %+v", report)
	}
	if parts.updateCalls != 0 || len(activity.actions()) != 0 {
		t.Error("ad-hoc evaluation must not write")
	}
}

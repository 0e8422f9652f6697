package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/version"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

func newTestVersionService() (*VersionServiceImpl, *mockPartRepository, *mockSnapshotRepository, *mockActivityLog) {
	parts := newMockPartRepository()
	snapshots := newMockSnapshotRepository()
	activity := newMockActivityLog()
	service := NewVersionService(parts, snapshots, activity, testCostModel, testLogger())
	parts.seed(secondary.PartRecord{
		ID: "PART-001", Material: "Aluminum", Process: "CNC", Quantity: 100, Score: 80,
		Findings: []secondary.FindingRecord{{ID: "DFM-001", Severity: "medium"}, {ID: "DFM-002", Severity: "medium"}},
	})
	return service, parts, snapshots, activity
}

func TestCompare(t *testing.T) {
	service, _, snapshots, _ := newTestVersionService()
	snapshots.snapshots = []*secondary.SnapshotRecord{
		{PartID: "PART-001", Version: "v1", Tag: "Prototype", Material: "ABS", Process: "Injection", Score: 60, IssueCount: 4, CostPerPart: 25.0, Fixes: []string{"add_draft"}},
		{PartID: "PART-001", Version: "v2", Material: "PC", Process: "Injection", Score: 80, IssueCount: 2, CostPerPart: 24.5, Fixes: []string{"add_draft", "add_fillet", "add_fillet"}},
	}

	diff, err := service.Compare(context.Background(), "PART-001", "v1", "v2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := &primary.VersionDiff{
		PartID: "PART-001", VersionA: "v1", VersionB: "v2", Found: true,
		TagA: "Prototype", TagB: version.UntitledTag,
		ScoreA: 60, ScoreB: 80, ScoreDelta: 20, ScoreDirection: version.DirectionImproved,
		IssuesA: 4, IssuesB: 2, IssuesDelta: -2,
		MaterialA: "ABS", MaterialB: "PC", ProcessA: "Injection", ProcessB: "Injection",
		CostPerPartA: 25.0, CostPerPartB: 24.5, CostDelta: -0.5,
		FixesApplied: []string{"add_fillet"},
	}
	if d := cmp.Diff(want, diff); d != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", d)
	}
}

func TestCompare_MissingSnapshotIsReportedNotRaised(t *testing.T) {
	service, _, snapshots, _ := newTestVersionService()
	snapshots.snapshots = []*secondary.SnapshotRecord{{PartID: "PART-001", Version: "v1"}}

	diff, err := service.Compare(context.Background(), "PART-001", "v1", "v9")
	if err != nil {
		t.Fatalf("missing snapshot must not be an error, got %v", err)
	}
	if diff.Found || diff.Message != version.NotFoundMessage {
		t.Errorf("expected not-found result, got %+v", diff)
	}
}

func TestCompare_StoreFailureSurfaces(t *testing.T) {
	service, _, snapshots, _ := newTestVersionService()
	snapshots.getErr = errors.New("io error")

	if _, err := service.Compare(context.Background(), "PART-001", "v1", "v2"); err == nil {
		t.Error("expected store failure to surface")
	}
}

func TestCreateSnapshot(t *testing.T) {
	service, _, snapshots, activity := newTestVersionService()
	ctx := context.Background()

	first, err := service.CreateSnapshot(ctx, primary.CreateSnapshotRequest{PartID: "PART-001", Fixes: []string{"b", "a", "a"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.Version != "v1" || first.Tag != version.UntitledTag {
		t.Errorf("expected untagged v1, got %+v", first)
	}
	if first.CostPerPart != 45 || first.Score != 80 {
		t.Errorf("expected cost 45 and score 80, got %+v", first)
	}
	if first.CreatedAt != snapshots.snapshots[0].CreatedAt || first.CreatedAt == "" {
		t.Errorf("expected creation time from the store, got %q", first.CreatedAt)
	}

	stored := snapshots.snapshots[0]
	if stored.IssueCount != 2 {
		t.Errorf("expected issue count 2, got %d", stored.IssueCount)
	}
	if d := cmp.Diff([]string{"a", "b"}, stored.Fixes); d != "" {
		t.Errorf("fixes mismatch (-want +got):\n%s", d)
	}

	second, err := service.CreateSnapshot(ctx, primary.CreateSnapshotRequest{PartID: "PART-001", Tag: "Release"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.Version != "v2" || second.Tag != "Release" {
		t.Errorf("expected tagged v2, got %+v", second)
	}

	_, err = service.CreateSnapshot(ctx, primary.CreateSnapshotRequest{PartID: "PART-001", Version: "v1"})
	if !errors.Is(err, corepart.ErrInvalidInput) {
		t.Errorf("expected duplicate version rejected, got %v", err)
	}

	if got := activity.actions(); len(got) != 2 {
		t.Errorf("expected 2 activity entries, got %v", got)
	}
}

func TestCreateSnapshot_PartNotFound(t *testing.T) {
	service, _, _, _ := newTestVersionService()

	_, err := service.CreateSnapshot(context.Background(), primary.CreateSnapshotRequest{PartID: "PART-404"})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTimeline(t *testing.T) {
	service, _, snapshots, _ := newTestVersionService()
	snapshots.snapshots = []*secondary.SnapshotRecord{
		{PartID: "PART-001", Version: "v10", Score: 90},
		{PartID: "PART-001", Version: "v2", Score: 70, Tag: "EVT"},
		{PartID: "PART-001", Version: "v1", Score: 50},
		{PartID: "PART-002", Version: "v1", Score: 10},
	}

	entries, err := service.Timeline(context.Background(), "PART-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Version + ":" + e.Tag
	}
	want := []string{"v1:Untitled", "v2:EVT", "v10:Untitled"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", d)
	}
}

func TestTimeline_UnknownPart(t *testing.T) {
	service, _, _, _ := newTestVersionService()

	_, err := service.Timeline(context.Background(), "PART-404")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTagVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		tag     string
		wantErr error
	}{
		{"tags existing", "v1", "Golden", nil},
		{"missing snapshot", "v7", "Golden", secondary.ErrNotFound},
		{"blank tag", "v1", "  ", corepart.ErrInvalidInput},
		{"blank version", "", "Golden", corepart.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, snapshots, _ := newTestVersionService()
			snapshots.snapshots = []*secondary.SnapshotRecord{{PartID: "PART-001", Version: "v1"}}

			err := service.TagVersion(context.Background(), "PART-001", tt.version, tt.tag)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if snapshots.snapshots[0].Tag != tt.tag {
				t.Errorf("expected tag %q, got %q", tt.tag, snapshots.snapshots[0].Tag)
			}
		})
	}
}

func TestSuggestTag(t *testing.T) {
	tests := []struct {
		name      string
		part      secondary.PartRecord
		wantTag   string
		wantQty   int
		wantStale bool
	}{
		{
			name:    "mass production ready",
			part:    secondary.PartRecord{ID: "PART-001", Material: "ABS", Process: "Injection", Quantity: 5000, Score: 95, Evaluated: true, EvaluatedMaterial: "ABS", EvaluatedProcess: "Injection"},
			wantTag: version.TagForProduction,
			wantQty: 5000,
		},
		{
			name:    "small good run",
			part:    secondary.PartRecord{ID: "PART-001", Material: "PLA", Process: "FDM", Quantity: 3, Score: 80, Evaluated: true, EvaluatedMaterial: "PLA", EvaluatedProcess: "FDM"},
			wantTag: version.TagPrototype,
			wantQty: 3,
		},
		{
			name:      "stale low score",
			part:      secondary.PartRecord{ID: "PART-001", Material: "PC", Process: "CNC", Quantity: 100, Score: 60, Evaluated: true, EvaluatedMaterial: "ABS", EvaluatedProcess: "CNC"},
			wantTag:   version.TagDeprecated,
			wantQty:   100,
			wantStale: true,
		},
		{
			name:    "missing quantity counts as one",
			part:    secondary.PartRecord{ID: "PART-001", Score: 0},
			wantTag: version.TagDeprecated,
			wantQty: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := newMockPartRepository()
			service := NewVersionService(parts, newMockSnapshotRepository(), newMockActivityLog(), testCostModel, testLogger())
			parts.seed(tt.part)

			got, err := service.SuggestTag(context.Background(), "PART-001")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			want := &primary.TagSuggestion{PartID: "PART-001", Tag: tt.wantTag, Score: tt.part.Score, Quantity: tt.wantQty, Stale: tt.wantStale}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("suggestion mismatch (-want +got):\n%s", diff)
			}
			if parts.updateCalls != 0 {
				t.Error("suggesting a tag must not write the part")
			}
		})
	}
}

func TestSuggestTag_Errors(t *testing.T) {
	service, _, _, _ := newTestVersionService()

	if _, err := service.SuggestTag(context.Background(), "PART-404"); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.SuggestTag(context.Background(), " "); !errors.Is(err, corepart.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/foundry/internal/adapters/sqlite"
	"github.com/example/foundry/internal/ports/secondary"
)

func TestPartRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPartRepository(db)
	ctx := context.Background()

	part := &secondary.PartRecord{
		ID:       "PART-001",
		Material: "ABS Plastic",
		Process:  "Injection Molding",
		Quantity: 5000,
		Score:    80,
		Findings: []secondary.FindingRecord{
			{ID: "DFM-001", Code: "IM-DRAFT", IssueType: "Draft Angle", Description: "needs draft", Severity: "medium", SuggestedFix: "add draft"},
		},
		Evaluated:         true,
		EvaluatedMaterial: "ABS Plastic",
		EvaluatedProcess:  "Injection Molding",
		UseCase:           "enclosure",
		Environment:       "indoor",
	}

	if err := repo.Create(ctx, part); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if part.Revision != 1 {
		t.Errorf("expected revision 1 after create, got %d", part.Revision)
	}

	got, err := repo.GetByID(ctx, "PART-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if diff := cmp.Diff(part.Findings, got.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	if got.Material != "ABS Plastic" || got.Quantity != 5000 || got.Score != 80 {
		t.Errorf("unexpected part: %+v", got)
	}
	if !got.Evaluated || got.EvaluatedProcess != "Injection Molding" {
		t.Errorf("expected evaluated selection to round trip, got %+v", got)
	}
	if got.UseCase != "enclosure" || got.LoadCondition != "" {
		t.Errorf("unexpected intent fields: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestPartRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPartRepository(db)

	_, err := repo.GetByID(context.Background(), "PART-999")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPartRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPartRepository(db)
	ctx := context.Background()

	seedPart(t, db, "PART-001", "ABS", "FDM")

	part, err := repo.GetByID(ctx, "PART-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	part.Process = "Injection Molding"
	part.Quantity = 2000

	if err := repo.Update(ctx, part); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if part.Revision != 2 {
		t.Errorf("expected revision bumped to 2, got %d", part.Revision)
	}

	got, _ := repo.GetByID(ctx, "PART-001")
	if got.Process != "Injection Molding" || got.Quantity != 2000 || got.Revision != 2 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestPartRepository_Update_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		seed    bool
		rev     int64
		wantErr error
	}{
		{name: "stale revision", seed: true, rev: 7, wantErr: secondary.ErrRevisionConflict},
		{name: "missing part", seed: false, rev: 1, wantErr: secondary.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := sqlite.NewPartRepository(db)
			if tt.seed {
				seedPart(t, db, "PART-001", "ABS", "FDM")
			}

			err := repo.Update(context.Background(), &secondary.PartRecord{ID: "PART-001", Revision: tt.rev})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPartRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPartRepository(db)

	seedPart(t, db, "PART-002", "", "")
	seedPart(t, db, "PART-001", "", "")

	parts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].ID != "PART-001" || parts[1].ID != "PART-002" {
		t.Errorf("expected ID order, got %s, %s", parts[0].ID, parts[1].ID)
	}
	if len(parts[0].Findings) != 0 {
		t.Error("expected empty findings")
	}
}

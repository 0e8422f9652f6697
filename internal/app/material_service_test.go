package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/foundry/internal/ports/secondary"
)

type stubMaterialSource struct {
	records []secondary.MaterialRecord
	err     error
}

func (s stubMaterialSource) List(ctx context.Context) ([]secondary.MaterialRecord, error) {
	return s.records, s.err
}

func testMaterialService(t *testing.T) *MaterialServiceImpl {
	t.Helper()
	catalog, err := LoadMaterialCatalog(context.Background(), stubMaterialSource{records: []secondary.MaterialRecord{
		{Name: "ABS", Category: "plastic", ProcessCompatibility: []string{"injection molding", "fdm"}, SuitabilityTags: []string{"enclosure", "consumer"}, MinWallThicknessMM: 1.2, MinDraftAngleDeg: 1.0},
		{Name: "Polycarbonate", Category: "plastic", ProcessCompatibility: []string{"injection molding"}, SuitabilityTags: []string{"outdoor enclosure", "impact"}, MinWallThicknessMM: 1.5, MinDraftAngleDeg: 1.5},
		{Name: "Aluminum 6061", Category: "metal", ProcessCompatibility: []string{"cnc"}, SuitabilityTags: []string{"bracket"}},
	}})
	if err != nil {
		t.Fatalf("LoadMaterialCatalog failed: %v", err)
	}
	return NewMaterialService(catalog)
}

func TestLoadMaterialCatalog_SourceFailure(t *testing.T) {
	_, err := LoadMaterialCatalog(context.Background(), stubMaterialSource{err: errors.New("bad yaml")})
	if err == nil {
		t.Error("expected error from failing source")
	}
}

func TestMaterialService_GetMaterial(t *testing.T) {
	service := testMaterialService(t)

	m, err := service.GetMaterial(context.Background(), "polycarbonate")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.Name != "Polycarbonate" || m.MinWallThicknessMM != 1.5 {
		t.Errorf("unexpected material %+v", m)
	}

	_, err = service.GetMaterial(context.Background(), "Mithril")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMaterialService_Recommend(t *testing.T) {
	tests := []struct {
		name    string
		process string
		useCase string
		want    []string
	}{
		{"substring of tags", "Injection Molding", "enclosure", []string{"ABS", "Polycarbonate"}},
		{"process must match exactly", "injection", "enclosure", []string{}},
		{"no use case match", "cnc", "enclosure", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := testMaterialService(t)

			got, err := service.Recommend(context.Background(), tt.process, tt.useCase)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			names := make([]string, len(got))
			for i, m := range got {
				names[i] = m.Name
			}
			if d := cmp.Diff(tt.want, names); d != "" {
				t.Errorf("recommendation mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestMaterialService_ListMaterials(t *testing.T) {
	service := testMaterialService(t)

	all, err := service.ListMaterials(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 materials, got %d", len(all))
	}
}

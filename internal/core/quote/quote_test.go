package quote

import (
	"testing"

	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/vendor"
)

func TestLeadTimeDays(t *testing.T) {
	tests := []struct {
		quantity int
		want     int
	}{
		{0, 7},
		{1, 7},
		{499, 7},
		{500, 14},
		{10000, 14},
	}
	for _, tt := range tests {
		if got := LeadTimeDays(tt.quantity); got != tt.want {
			t.Errorf("LeadTimeDays(%d) = %d, want %d", tt.quantity, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	est := cost.DefaultModel().Estimate("CNC", "Aluminum", 1000)
	ranked := []vendor.Match{
		{Candidate: vendor.Candidate{VendorID: "VEN-002"}, Score: 110},
		{Candidate: vendor.Candidate{VendorID: "VEN-001"}, Score: 100},
	}

	q := Compose("PART-001", est, ranked)

	if q.PartID != "PART-001" || q.Process != "CNC" || q.Material != "Aluminum" {
		t.Errorf("unexpected identity fields: %+v", q)
	}
	if q.Quantity != 1000 || q.SetupCost != 500 || q.UnitCost != 40 || q.TotalCost != 40500 {
		t.Errorf("unexpected cost fields: %+v", q)
	}
	if q.LeadTimeDays != 14 {
		t.Errorf("expected 14 day lead time, got %d", q.LeadTimeDays)
	}
	if q.TopVendor == nil || q.TopVendor.VendorID != "VEN-002" {
		t.Fatalf("expected top vendor VEN-002, got %+v", q.TopVendor)
	}

	ranked[0].VendorID = "mutated"
	if q.TopVendor.VendorID != "VEN-002" {
		t.Error("quote should not alias the ranked slice")
	}
}

func TestCompose_NoVendor(t *testing.T) {
	q := Compose("PART-001", cost.DefaultModel().Estimate("waterjet", "steel", 10), nil)

	if q.TopVendor != nil {
		t.Errorf("expected nil top vendor, got %+v", q.TopVendor)
	}
	if q.LeadTimeDays != 7 {
		t.Errorf("expected 7 day lead time, got %d", q.LeadTimeDays)
	}
}

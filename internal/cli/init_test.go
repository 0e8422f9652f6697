package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// stubVendorService records added vendors on top of a fixed pool.
type stubVendorService struct {
	pool   []*primary.Vendor
	added  []string
	addErr error
}

func (s *stubVendorService) RankForPart(ctx context.Context, partID string) ([]*primary.VendorMatch, error) {
	return nil, nil
}

func (s *stubVendorService) Rank(ctx context.Context, req primary.RankVendorsRequest) ([]*primary.VendorMatch, error) {
	return nil, nil
}

func (s *stubVendorService) ListVendors(ctx context.Context) ([]*primary.Vendor, error) {
	return s.pool, nil
}

func (s *stubVendorService) AddVendor(ctx context.Context, req primary.AddVendorRequest) (*primary.Vendor, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = append(s.added, req.VendorID)
	return &primary.Vendor{ID: req.VendorID}, nil
}

func TestSeedVendors_SkipsExisting(t *testing.T) {
	svc := &stubVendorService{pool: []*primary.Vendor{{ID: "VEN-001"}}}
	vendors := []*secondary.VendorRecord{
		{ID: "VEN-001", Name: "Existing", Tier: 1},
		{ID: "VEN-002", Name: "New", Tier: 1},
	}

	added, err := seedVendors(context.Background(), svc, vendors)
	if err != nil {
		t.Fatalf("seedVendors failed: %v", err)
	}
	if added != 1 || len(svc.added) != 1 || svc.added[0] != "VEN-002" {
		t.Errorf("expected only VEN-002 added, got %d %v", added, svc.added)
	}
}

func TestSeedVendors_PropagatesErrors(t *testing.T) {
	svc := &stubVendorService{addErr: errors.New("boom")}

	_, err := seedVendors(context.Background(), svc, []*secondary.VendorRecord{{ID: "VEN-009"}})
	if err == nil {
		t.Fatal("expected error")
	}
}

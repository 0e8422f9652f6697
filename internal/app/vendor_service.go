package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/vendor"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// VendorServiceImpl implements the VendorService interface.
type VendorServiceImpl struct {
	partRepo   secondary.PartRepository
	vendorRepo secondary.VendorRepository
	activity   secondary.ActivityLog
	log        *logger.Logger
}

// NewVendorService creates a new VendorService with injected dependencies.
func NewVendorService(partRepo secondary.PartRepository, vendorRepo secondary.VendorRepository, activity secondary.ActivityLog, log *logger.Logger) *VendorServiceImpl {
	return &VendorServiceImpl{
		partRepo:   partRepo,
		vendorRepo: vendorRepo,
		activity:   activity,
		log:        log.With("service", "vendor"),
	}
}

// RankForPart ranks the pool against the part's stored selection.
func (s *VendorServiceImpl) RankForPart(ctx context.Context, partID string) ([]*primary.VendorMatch, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	matches, err := rankPool(ctx, s.vendorRepo, vendor.Request{
		Process:  record.Process,
		Material: record.Material,
		Quantity: record.Quantity,
	})
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activity, s.log, partID, ActionVendorsRanked, fmt.Sprintf("matches=%d", len(matches)))
	return matchesToPrimary(matches), nil
}

// Rank ranks the pool against an arbitrary request.
func (s *VendorServiceImpl) Rank(ctx context.Context, req primary.RankVendorsRequest) ([]*primary.VendorMatch, error) {
	matches, err := rankPool(ctx, s.vendorRepo, vendor.Request{
		Process:  req.Process,
		Material: req.Material,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return matchesToPrimary(matches), nil
}

// ListVendors returns the whole pool.
func (s *VendorServiceImpl) ListVendors(ctx context.Context) ([]*primary.Vendor, error) {
	records, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	vendors := make([]*primary.Vendor, len(records))
	for i, r := range records {
		vendors[i] = vendorRecordToPrimary(r)
	}
	return vendors, nil
}

// AddVendor validates and adds a vendor to the pool.
func (s *VendorServiceImpl) AddVendor(ctx context.Context, req primary.AddVendorRequest) (*primary.Vendor, error) {
	guard := corepart.CheckVendor(corepart.VendorContext{
		VendorID:    req.VendorID,
		Name:        req.Name,
		Tier:        req.Tier,
		Processes:   req.Processes,
		Materials:   req.Materials,
		MinOrderQty: req.MinOrderQty,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	_, err := s.vendorRepo.GetByID(ctx, req.VendorID)
	if err == nil {
		return nil, fmt.Errorf("%w: vendor %s already exists", corepart.ErrInvalidInput, req.VendorID)
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check vendor: %w", err)
	}

	record := &secondary.VendorRecord{
		ID:          req.VendorID,
		Name:        req.Name,
		City:        req.City,
		Tier:        req.Tier,
		Processes:   lowerAll(req.Processes),
		Materials:   lowerAll(req.Materials),
		MinOrderQty: req.MinOrderQty,
		Contact:     req.Contact,
	}
	if err := s.vendorRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	s.log.Info("vendor added", "vendor_id", record.ID, "tier", record.Tier)
	return vendorRecordToPrimary(record), nil
}

// rankPool scans the full pool and ranks it.
func rankPool(ctx context.Context, vendorRepo secondary.VendorRepository, req vendor.Request) ([]vendor.Match, error) {
	records, err := vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor pool: %w", err)
	}

	candidates := make([]vendor.Candidate, len(records))
	for i, r := range records {
		candidates[i] = vendorRecordToCandidate(r)
	}
	return vendor.Rank(req, candidates), nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Ensure VendorServiceImpl implements the interface
var _ primary.VendorService = (*VendorServiceImpl)(nil)

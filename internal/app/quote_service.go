package app

import (
	"context"
	"fmt"

	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/handoff"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/quote"
	"github.com/example/foundry/internal/core/vendor"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// QuoteServiceImpl implements the QuoteService interface.
type QuoteServiceImpl struct {
	partRepo   secondary.PartRepository
	vendorRepo secondary.VendorRepository
	activity   secondary.ActivityLog
	model      *cost.Model
	log        *logger.Logger
}

// NewQuoteService creates a new QuoteService with injected dependencies.
func NewQuoteService(partRepo secondary.PartRepository, vendorRepo secondary.VendorRepository, activity secondary.ActivityLog, model *cost.Model, log *logger.Logger) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		partRepo:   partRepo,
		vendorRepo: vendorRepo,
		activity:   activity,
		model:      model,
		log:        log.With("service", "quote"),
	}
}

// Quote prices the stored selection and attaches the top-ranked vendor.
func (s *QuoteServiceImpl) Quote(ctx context.Context, partID string) (*primary.Quote, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	quantity := corepart.EffectiveQuantity(record.Quantity)
	est := s.model.Estimate(record.Process, record.Material, quantity)
	matches, err := rankPool(ctx, s.vendorRepo, vendor.Request{
		Process:  record.Process,
		Material: record.Material,
		Quantity: quantity,
	})
	if err != nil {
		return nil, err
	}

	q := quote.Compose(partID, est, matches)

	topVendor := "none"
	out := &primary.Quote{
		PartID:       q.PartID,
		Process:      q.Process,
		Material:     q.Material,
		Quantity:     q.Quantity,
		SetupCost:    q.SetupCost,
		UnitCost:     q.UnitCost,
		TotalCost:    q.TotalCost,
		CostPerPart:  q.CostPerPart,
		LeadTimeDays: q.LeadTimeDays,
	}
	if q.TopVendor != nil {
		out.TopVendor = matchToPrimary(*q.TopVendor)
		topVendor = q.TopVendor.VendorID
	}

	recordActivity(ctx, s.activity, s.log, partID, ActionQuoteGenerated,
		fmt.Sprintf("total=%.2f lead_time_days=%d top_vendor=%s", q.TotalCost, q.LeadTimeDays, topVendor))
	return out, nil
}

// HandoffGuide derives the vendor handoff package from the stored selection.
func (s *QuoteServiceImpl) HandoffGuide(ctx context.Context, partID string) (*primary.HandoffGuide, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	g := handoff.Build(record.Process, record.Material, record.Quantity)
	return &primary.HandoffGuide{
		PartID:     partID,
		VendorType: g.VendorType,
		FileTypes:  g.FileTypes,
		Checklist:  g.Checklist,
		Material:   g.Material,
		Process:    g.Process,
		Quantity:   g.Quantity,
	}, nil
}

// Ensure QuoteServiceImpl implements the interface
var _ primary.QuoteService = (*QuoteServiceImpl)(nil)

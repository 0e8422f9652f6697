package app

import (
	"context"
	"fmt"

	"github.com/example/foundry/internal/core/cost"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// CostServiceImpl implements the CostService interface.
type CostServiceImpl struct {
	partRepo secondary.PartRepository
	activity secondary.ActivityLog
	model    *cost.Model
	log      *logger.Logger
}

// NewCostService creates a new CostService with injected dependencies.
func NewCostService(partRepo secondary.PartRepository, activity secondary.ActivityLog, model *cost.Model, log *logger.Logger) *CostServiceImpl {
	return &CostServiceImpl{
		partRepo: partRepo,
		activity: activity,
		model:    model,
		log:      log.With("service", "cost"),
	}
}

// EstimatePart prices the stored selection, optionally at another quantity.
func (s *CostServiceImpl) EstimatePart(ctx context.Context, req primary.EstimatePartRequest) (*primary.CostEstimate, error) {
	if err := corepart.CheckPartID(req.PartID).Error(); err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		if err := corepart.CheckQuantity(*req.Quantity).Error(); err != nil {
			return nil, err
		}
	}

	record, err := s.partRepo.GetByID(ctx, req.PartID)
	if err != nil {
		return nil, err
	}

	quantity := record.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	est := s.model.Estimate(record.Process, record.Material, quantity)
	s.log.Debug("cost estimated", "part_id", req.PartID, "bucket", est.Bucket, "quantity", est.Quantity, "total", est.TotalCost)
	recordActivity(ctx, s.activity, s.log, req.PartID, ActionCostSimulated,
		fmt.Sprintf("bucket=%s quantity=%d cost_per_part=%.2f", est.Bucket, est.Quantity, est.CostPerPart))

	return estimateToPrimary(req.PartID, est), nil
}

// Estimate prices an arbitrary selection. Quantities below 1 count as 1.
func (s *CostServiceImpl) Estimate(ctx context.Context, process, material string, quantity int) (*primary.CostEstimate, error) {
	return estimateToPrimary("", s.model.Estimate(process, material, quantity)), nil
}

// Curve returns cost per part across the standard tiers.
func (s *CostServiceImpl) Curve(ctx context.Context, process, material string) ([]*primary.CostCurvePoint, error) {
	points := s.model.Curve(process, material)
	out := make([]*primary.CostCurvePoint, len(points))
	for i, p := range points {
		out[i] = &primary.CostCurvePoint{Quantity: p.Quantity, CostPerPart: p.CostPerPart}
	}
	return out, nil
}

// AdviseTooling returns tooling guidance for a process at a quantity.
func (s *CostServiceImpl) AdviseTooling(ctx context.Context, process string, quantity int) (*primary.ToolingAdvice, error) {
	quantity = cost.NormalizeQuantity(quantity)
	advice := cost.AdviseTooling(process, quantity)
	return &primary.ToolingAdvice{
		Process:         process,
		Quantity:        quantity,
		ToolType:        advice.ToolType,
		Complexity:      advice.Complexity,
		CostLevel:       advice.CostLevel,
		Recommendations: advice.Recommendations,
	}, nil
}

// Ensure CostServiceImpl implements the interface
var _ primary.CostService = (*CostServiceImpl)(nil)

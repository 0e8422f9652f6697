package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/dfm"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/vendor"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// WhatIfServiceImpl implements the WhatIfService interface.
type WhatIfServiceImpl struct {
	partRepo   secondary.PartRepository
	vendorRepo secondary.VendorRepository
	activity   secondary.ActivityLog
	evaluator  *dfm.Evaluator
	model      *cost.Model
	locks      *PartLocks
	log        *logger.Logger
}

// NewWhatIfService creates a new WhatIfService with injected dependencies.
func NewWhatIfService(
	partRepo secondary.PartRepository,
	vendorRepo secondary.VendorRepository,
	activity secondary.ActivityLog,
	evaluator *dfm.Evaluator,
	model *cost.Model,
	locks *PartLocks,
	log *logger.Logger,
) *WhatIfServiceImpl {
	return &WhatIfServiceImpl{
		partRepo:   partRepo,
		vendorRepo: vendorRepo,
		activity:   activity,
		evaluator:  evaluator,
		model:      model,
		locks:      locks,
		log:        log.With("service", "whatif"),
	}
}

// Simulate evaluates, prices and sources a hypothetical selection on a
// working copy of the part. The stored part is only written when
// req.Commit is set; otherwise the only side effect is an activity entry.
func (s *WhatIfServiceImpl) Simulate(ctx context.Context, req primary.SimulateRequest) (*primary.Scenario, error) {
	guard := corepart.CheckSimulation(corepart.SimulationContext{
		PartID:   req.PartID,
		Process:  req.Process,
		Material: req.Material,
		Quantity: req.Quantity,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	if req.Commit {
		unlock := s.locks.Lock(req.PartID)
		defer unlock()
	}

	record, err := s.partRepo.GetByID(ctx, req.PartID)
	if err != nil {
		return nil, err
	}

	working := *record
	working.Material = req.Material
	working.Process = req.Process
	if req.Quantity != nil {
		working.Quantity = *req.Quantity
	}
	quantity := corepart.EffectiveQuantity(working.Quantity)

	result := s.evaluator.Evaluate(working.Material, working.Process)
	est := s.model.Estimate(working.Process, working.Material, quantity)
	matches, err := rankPool(ctx, s.vendorRepo, vendor.Request{
		Process:  working.Process,
		Material: working.Material,
		Quantity: quantity,
	})
	if err != nil {
		return nil, err
	}

	if req.Commit {
		applyEvaluation(&working, result)
		if err := s.partRepo.Update(ctx, &working); err != nil {
			if errors.Is(err, secondary.ErrRevisionConflict) {
				s.log.Warn("what-if commit lost a revision race", "part_id", req.PartID)
			}
			return nil, fmt.Errorf("failed to commit scenario: %w", err)
		}
		s.log.Info("scenario committed", "part_id", req.PartID, "score", result.Score)
	}

	label := ScenarioLabel(req.Process, req.Material)
	recordActivity(ctx, s.activity, s.log, req.PartID, ActionWhatIfSimulated,
		fmt.Sprintf("scenario=%q score=%d cost_per_part=%.2f vendors=%d committed=%t", label, result.Score, est.CostPerPart, len(matches), req.Commit))

	return &primary.Scenario{
		PartID:      req.PartID,
		Label:       label,
		Process:     working.Process,
		Material:    working.Material,
		Quantity:    quantity,
		Score:       result.Score,
		Findings:    findingsToPrimary(result.Findings),
		CostPerPart: est.CostPerPart,
		TotalCost:   est.TotalCost,
		Vendors:     matchesToPrimary(matches),
		Committed:   req.Commit,
	}, nil
}

// ScenarioLabel names a scenario "<process> + <material>".
func ScenarioLabel(process, material string) string {
	return process + " + " + material
}

// Ensure WhatIfServiceImpl implements the interface
var _ primary.WhatIfService = (*WhatIfServiceImpl)(nil)

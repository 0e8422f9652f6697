package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/foundry/internal/core/dfm"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// DFMServiceImpl implements the DFMService interface.
type DFMServiceImpl struct {
	partRepo  secondary.PartRepository
	activity  secondary.ActivityLog
	evaluator *dfm.Evaluator
	locks     *PartLocks
	log       *logger.Logger
}

// NewDFMService creates a new DFMService with injected dependencies.
func NewDFMService(partRepo secondary.PartRepository, activity secondary.ActivityLog, evaluator *dfm.Evaluator, locks *PartLocks, log *logger.Logger) *DFMServiceImpl {
	return &DFMServiceImpl{
		partRepo:  partRepo,
		activity:  activity,
		evaluator: evaluator,
		locks:     locks,
		log:       log.With("service", "dfm"),
	}
}

// EvaluatePart evaluates the stored selection and persists findings and score.
func (s *DFMServiceImpl) EvaluatePart(ctx context.Context, partID string) (*primary.DFMReport, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(partID)
	defer unlock()

	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	result := s.evaluator.Evaluate(record.Material, record.Process)
	applyEvaluation(record, result)

	if err := s.partRepo.Update(ctx, record); err != nil {
		if errors.Is(err, secondary.ErrRevisionConflict) {
			s.log.Warn("evaluation lost a revision race", "part_id", partID, "revision", record.Revision)
		}
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	s.log.Info("part evaluated", "part_id", partID, "rule_set", result.RuleSet, "score", result.Score, "findings", len(result.Findings))
	recordActivity(ctx, s.activity, s.log, partID, ActionDFMEvaluated,
		fmt.Sprintf("rule_set=%s score=%d findings=%d", result.RuleSet, result.Score, len(result.Findings)))

	return toReport(partID, record.Material, record.Process, result), nil
}

// Evaluate runs an evaluation without reading or writing any part.
func (s *DFMServiceImpl) Evaluate(ctx context.Context, material, process string) (*primary.DFMReport, error) {
	return toReport("", material, process, s.evaluator.Evaluate(material, process)), nil
}

func toReport(partID, material, process string, result dfm.Result) *primary.DFMReport {
	return &primary.DFMReport{
		PartID:   partID,
		Material: material,
		Process:  process,
		RuleSet:  string(result.RuleSet),
		Findings: findingsToPrimary(result.Findings),
		Score:    result.Score,
	}
}

// Ensure DFMServiceImpl implements the interface
var _ primary.DFMService = (*DFMServiceImpl)(nil)

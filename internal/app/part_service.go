package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// PartServiceImpl implements the PartService interface.
type PartServiceImpl struct {
	partRepo secondary.PartRepository
	activity secondary.ActivityLog
	locks    *PartLocks
	log      *logger.Logger
}

// NewPartService creates a new PartService with injected dependencies.
func NewPartService(partRepo secondary.PartRepository, activity secondary.ActivityLog, locks *PartLocks, log *logger.Logger) *PartServiceImpl {
	return &PartServiceImpl{
		partRepo: partRepo,
		activity: activity,
		locks:    locks,
		log:      log.With("service", "part"),
	}
}

// SubmitDesignIntent creates the part on first submission or updates its intent.
func (s *PartServiceImpl) SubmitDesignIntent(ctx context.Context, req primary.SubmitDesignIntentRequest) (*primary.Part, error) {
	if err := corepart.CheckPartID(req.PartID).Error(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.PartID)
	defer unlock()

	record, err := s.partRepo.GetByID(ctx, req.PartID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		record = &secondary.PartRecord{ID: req.PartID, Quantity: 1}
		applyIntent(record, req.Intent)
		if err := s.partRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create part: %w", err)
		}
		s.log.Info("part created", "part_id", req.PartID)
	case err != nil:
		return nil, err
	default:
		applyIntent(record, req.Intent)
		if err := s.partRepo.Update(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to update design intent: %w", err)
		}
	}

	recordActivity(ctx, s.activity, s.log, req.PartID, ActionDesignIntentSubmitted,
		fmt.Sprintf("use_case=%s environment=%s scale=%s", req.Intent.UseCase, req.Intent.Environment, req.Intent.ProductionScale))

	return s.reload(ctx, req.PartID)
}

// SelectConfiguration changes the selection without re-evaluating.
func (s *PartServiceImpl) SelectConfiguration(ctx context.Context, req primary.SelectConfigurationRequest) (*primary.Part, error) {
	if err := corepart.CheckPartID(req.PartID).Error(); err != nil {
		return nil, err
	}
	change := corepart.SelectionChange{Material: req.Material, Process: req.Process, Quantity: req.Quantity}
	if err := corepart.CheckSelectionChange(change).Error(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.PartID)
	defer unlock()

	record, err := s.partRepo.GetByID(ctx, req.PartID)
	if err != nil {
		return nil, err
	}

	if req.Material != nil {
		record.Material = strings.TrimSpace(*req.Material)
	}
	if req.Process != nil {
		record.Process = strings.TrimSpace(*req.Process)
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}

	if err := s.partRepo.Update(ctx, record); err != nil {
		if errors.Is(err, secondary.ErrRevisionConflict) {
			s.log.Warn("selection lost a revision race", "part_id", req.PartID)
		}
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}

	recordActivity(ctx, s.activity, s.log, req.PartID, ActionConfigurationSelected,
		fmt.Sprintf("material=%s process=%s quantity=%d", record.Material, record.Process, record.Quantity))

	return recordToPart(record), nil
}

// GetPart retrieves a part by ID.
func (s *PartServiceImpl) GetPart(ctx context.Context, partID string) (*primary.Part, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}
	return s.reload(ctx, partID)
}

// ListParts retrieves all parts.
func (s *PartServiceImpl) ListParts(ctx context.Context) ([]*primary.Part, error) {
	records, err := s.partRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	parts := make([]*primary.Part, len(records))
	for i, r := range records {
		parts[i] = recordToPart(r)
	}
	return parts, nil
}

// ListActivity returns the newest activity entries for a part.
func (s *PartServiceImpl) ListActivity(ctx context.Context, partID string, limit int) ([]*primary.ActivityEntry, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	records, err := s.activity.List(ctx, partID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ActivityEntry{
			ID:        r.ID,
			PartID:    r.PartID,
			Action:    r.Action,
			Detail:    r.Detail,
			Actor:     r.Actor,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

func (s *PartServiceImpl) reload(ctx context.Context, partID string) (*primary.Part, error) {
	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	return recordToPart(record), nil
}

func applyIntent(record *secondary.PartRecord, intent primary.DesignIntent) {
	record.UseCase = intent.UseCase
	record.Environment = intent.Environment
	record.ProductionScale = intent.ProductionScale
	record.LoadCondition = intent.LoadCondition
	record.FinishRequirement = intent.FinishRequirement
}

// Ensure PartServiceImpl implements the interface
var _ primary.PartService = (*PartServiceImpl)(nil)

package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/example/foundry/internal/core/cost"
	corepart "github.com/example/foundry/internal/core/part"
	"github.com/example/foundry/internal/core/version"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// VersionServiceImpl implements the VersionService interface.
type VersionServiceImpl struct {
	partRepo     secondary.PartRepository
	snapshotRepo secondary.SnapshotRepository
	activity     secondary.ActivityLog
	model        *cost.Model
	log          *logger.Logger
}

// NewVersionService creates a new VersionService with injected dependencies.
func NewVersionService(partRepo secondary.PartRepository, snapshotRepo secondary.SnapshotRepository, activity secondary.ActivityLog, model *cost.Model, log *logger.Logger) *VersionServiceImpl {
	return &VersionServiceImpl{
		partRepo:     partRepo,
		snapshotRepo: snapshotRepo,
		activity:     activity,
		model:        model,
		log:          log.With("service", "version"),
	}
}

// Compare diffs two snapshots. Missing snapshots are reported in the diff.
func (s *VersionServiceImpl) Compare(ctx context.Context, partID, versionA, versionB string) (*primary.VersionDiff, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	a, err := s.lookup(ctx, partID, versionA)
	if err != nil {
		return nil, err
	}
	b, err := s.lookup(ctx, partID, versionB)
	if err != nil {
		return nil, err
	}

	d := version.Compare(partID, versionA, versionB, a, b)
	return &primary.VersionDiff{
		PartID:         d.PartID,
		VersionA:       d.VersionA,
		VersionB:       d.VersionB,
		Found:          d.Found,
		Message:        d.Message,
		TagA:           d.TagA,
		TagB:           d.TagB,
		ScoreA:         d.ScoreA,
		ScoreB:         d.ScoreB,
		ScoreDelta:     d.ScoreDelta,
		ScoreDirection: d.ScoreDirection,
		IssuesA:        d.IssuesA,
		IssuesB:        d.IssuesB,
		IssuesDelta:    d.IssuesDelta,
		MaterialA:      d.MaterialA,
		MaterialB:      d.MaterialB,
		ProcessA:       d.ProcessA,
		ProcessB:       d.ProcessB,
		CostPerPartA:   d.CostPerPartA,
		CostPerPartB:   d.CostPerPartB,
		CostDelta:      d.CostDelta,
		FixesApplied:   d.FixesApplied,
	}, nil
}

// Timeline lists every snapshot of an existing part in version order.
func (s *VersionServiceImpl) Timeline(ctx context.Context, partID string) ([]*primary.TimelineEntry, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}
	if _, err := s.partRepo.GetByID(ctx, partID); err != nil {
		return nil, err
	}

	records, err := s.snapshotRepo.List(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	snapshots := make([]version.Snapshot, len(records))
	createdAt := make(map[string]string, len(records))
	for i, r := range records {
		snapshots[i] = recordToSnapshot(r)
		createdAt[r.Version] = r.CreatedAt
	}

	timeline := version.Timeline(snapshots)
	out := make([]*primary.TimelineEntry, len(timeline))
	for i, e := range timeline {
		out[i] = &primary.TimelineEntry{
			Version:     e.Version,
			Tag:         e.Tag,
			Material:    e.Material,
			Process:     e.Process,
			Score:       e.Score,
			CostPerPart: e.CostPerPart,
			CreatedAt:   createdAt[e.Version],
		}
	}
	return out, nil
}

// TagVersion labels an existing snapshot.
func (s *VersionServiceImpl) TagVersion(ctx context.Context, partID, versionName, tag string) error {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return err
	}
	if err := corepart.CheckVersionName(versionName).Error(); err != nil {
		return err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("%w: tag is required", corepart.ErrInvalidInput)
	}

	if err := s.snapshotRepo.SetTag(ctx, partID, versionName, tag); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.log, partID, ActionVersionTagged, fmt.Sprintf("version=%s tag=%q", versionName, tag))
	return nil
}

// CreateSnapshot freezes the part's current state. The cost per part is
// priced at capture time so later comparisons need no recomputation.
func (s *VersionServiceImpl) CreateSnapshot(ctx context.Context, req primary.CreateSnapshotRequest) (*primary.TimelineEntry, error) {
	if err := corepart.CheckPartID(req.PartID).Error(); err != nil {
		return nil, err
	}

	record, err := s.partRepo.GetByID(ctx, req.PartID)
	if err != nil {
		return nil, err
	}

	existing, err := s.snapshotRepo.List(ctx, req.PartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	name := strings.TrimSpace(req.Version)
	if name == "" {
		names := make([]string, len(existing))
		for i, e := range existing {
			names[i] = e.Version
		}
		name = version.Next(names)
	}
	for _, e := range existing {
		if e.Version == name {
			return nil, fmt.Errorf("%w: version %s already exists for %s", corepart.ErrInvalidInput, name, req.PartID)
		}
	}

	est := s.model.Estimate(record.Process, record.Material, record.Quantity)
	snapshot := &secondary.SnapshotRecord{
		PartID:      req.PartID,
		Version:     name,
		Tag:         strings.TrimSpace(req.Tag),
		Material:    record.Material,
		Process:     record.Process,
		Quantity:    record.Quantity,
		Score:       record.Score,
		IssueCount:  len(record.Findings),
		CostPerPart: est.CostPerPart,
		Fixes:       uniqueSorted(req.Fixes),
	}
	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	s.log.Info("snapshot created", "part_id", req.PartID, "version", name, "score", snapshot.Score)
	recordActivity(ctx, s.activity, s.log, req.PartID, ActionSnapshotCreated,
		fmt.Sprintf("version=%s score=%d cost_per_part=%.2f", name, snapshot.Score, snapshot.CostPerPart))

	tag := snapshot.Tag
	if tag == "" {
		tag = version.UntitledTag
	}
	return &primary.TimelineEntry{
		Version:     snapshot.Version,
		Tag:         tag,
		Material:    snapshot.Material,
		Process:     snapshot.Process,
		Score:       snapshot.Score,
		CostPerPart: snapshot.CostPerPart,
		CreatedAt:   snapshot.CreatedAt,
	}, nil
}

// SuggestTag proposes a milestone tag from the stored score and quantity.
// A stale score is used as is and flagged in the result.
func (s *VersionServiceImpl) SuggestTag(ctx context.Context, partID string) (*primary.TagSuggestion, error) {
	if err := corepart.CheckPartID(partID).Error(); err != nil {
		return nil, err
	}

	record, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	quantity := corepart.EffectiveQuantity(record.Quantity)
	return &primary.TagSuggestion{
		PartID:   partID,
		Tag:      version.SuggestTag(record.Score, quantity),
		Score:    record.Score,
		Quantity: quantity,
		Stale:    recordStale(record),
	}, nil
}

// lookup returns nil (not an error) for a missing snapshot.
func (s *VersionServiceImpl) lookup(ctx context.Context, partID, name string) (*version.Snapshot, error) {
	rec, err := s.snapshotRepo.Get(ctx, partID, name)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}
	snap := recordToSnapshot(rec)
	return &snap, nil
}

func recordToSnapshot(r *secondary.SnapshotRecord) version.Snapshot {
	return version.Snapshot{
		Version:     r.Version,
		Tag:         r.Tag,
		Material:    r.Material,
		Process:     r.Process,
		Quantity:    r.Quantity,
		Score:       r.Score,
		IssueCount:  r.IssueCount,
		CostPerPart: r.CostPerPart,
		Fixes:       r.Fixes,
	}
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Ensure VersionServiceImpl implements the interface
var _ primary.VersionService = (*VersionServiceImpl)(nil)

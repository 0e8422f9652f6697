package primary

import "context"

// VersionService defines the primary port for version snapshots.
type VersionService interface {
	// Compare diffs two snapshots. A missing snapshot is reported in the
	// result (Found=false), not as an error.
	Compare(ctx context.Context, partID, versionA, versionB string) (*VersionDiff, error)

	// Timeline lists every snapshot of a part in version order.
	Timeline(ctx context.Context, partID string) ([]*TimelineEntry, error)

	// TagVersion labels an existing snapshot.
	TagVersion(ctx context.Context, partID, version, tag string) error

	// CreateSnapshot freezes the part's current state as a new version.
	CreateSnapshot(ctx context.Context, req CreateSnapshotRequest) (*TimelineEntry, error)

	// SuggestTag proposes a milestone tag from the part's score and quantity.
	SuggestTag(ctx context.Context, partID string) (*TagSuggestion, error)
}

// TagSuggestion is a proposed milestone tag and the values it was based on.
type TagSuggestion struct {
	PartID   string
	Tag      string
	Score    int
	Quantity int
	Stale    bool
}

// CreateSnapshotRequest contains parameters for capturing a milestone.
// An empty Version picks the next "vN".
type CreateSnapshotRequest struct {
	PartID  string
	Version string
	Tag     string
	Fixes   []string
}

// VersionDiff is the comparison of two snapshots.
type VersionDiff struct {
	PartID   string
	VersionA string
	VersionB string
	Found    bool
	Message  string

	TagA string
	TagB string

	ScoreA         int
	ScoreB         int
	ScoreDelta     int
	ScoreDirection string

	IssuesA     int
	IssuesB     int
	IssuesDelta int

	MaterialA string
	MaterialB string
	ProcessA  string
	ProcessB  string

	CostPerPartA float64
	CostPerPartB float64
	CostDelta    float64

	FixesApplied []string
}

// TimelineEntry is one snapshot in a part's history.
type TimelineEntry struct {
	Version     string
	Tag         string
	Material    string
	Process     string
	Score       int
	CostPerPart float64
	CreatedAt   string
}

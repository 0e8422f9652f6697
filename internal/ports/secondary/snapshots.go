package secondary

import "context"

// SnapshotRepository defines the secondary port for version snapshots.
type SnapshotRepository interface {
	// Get retrieves one snapshot. Returns ErrNotFound if absent.
	Get(ctx context.Context, partID, version string) (*SnapshotRecord, error)

	// List retrieves all snapshots of a part in creation order.
	List(ctx context.Context, partID string) ([]*SnapshotRecord, error)

	// Create persists a new snapshot and fills in CreatedAt. Versions are
	// unique per part.
	Create(ctx context.Context, snapshot *SnapshotRecord) error

	// SetTag labels an existing snapshot. Returns ErrNotFound if absent.
	SetTag(ctx context.Context, partID, version, tag string) error
}

// SnapshotRecord represents a frozen copy of a part at a milestone.
type SnapshotRecord struct {
	PartID      string
	Version     string
	Tag         string
	Material    string
	Process     string
	Quantity    int
	Score       int
	IssueCount  int
	CostPerPart float64
	Fixes       []string
	CreatedAt   string
}

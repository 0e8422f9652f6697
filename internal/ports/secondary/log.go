package secondary

import "context"

// ActivityLog defines the interface for the per-part activity trail.
// Implementations extract the actor from context. The application never
// reads the log back to make decisions.
type ActivityLog interface {
	// Append records one action against a part.
	Append(ctx context.Context, entry *ActivityRecord) error

	// List returns the most recent entries for a part, newest first.
	// A limit of zero or less returns everything.
	List(ctx context.Context, partID string, limit int) ([]*ActivityRecord, error)
}

// ActivityRecord is one activity log entry.
type ActivityRecord struct {
	ID        string
	PartID    string
	Action    string
	Detail    string
	Actor     string
	CreatedAt string
}

// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// PartService defines the primary port for part records.
type PartService interface {
	// SubmitDesignIntent creates the part on first submission or updates its intent.
	SubmitDesignIntent(ctx context.Context, req SubmitDesignIntentRequest) (*Part, error)

	// SelectConfiguration changes material, process and/or quantity without
	// re-evaluating. The stored score becomes stale.
	SelectConfiguration(ctx context.Context, req SelectConfigurationRequest) (*Part, error)

	// GetPart retrieves a part by ID.
	GetPart(ctx context.Context, partID string) (*Part, error)

	// ListParts retrieves all parts.
	ListParts(ctx context.Context) ([]*Part, error)

	// ListActivity returns the newest activity entries for a part.
	ListActivity(ctx context.Context, partID string, limit int) ([]*ActivityEntry, error)
}

// DesignIntent captures what the part is for.
type DesignIntent struct {
	UseCase           string
	Environment       string
	ProductionScale   string
	LoadCondition     string
	FinishRequirement string
}

// SubmitDesignIntentRequest contains parameters for submitting design intent.
type SubmitDesignIntentRequest struct {
	PartID string
	Intent DesignIntent
}

// SelectConfigurationRequest contains a partial selection update.
// Nil fields are left unchanged.
type SelectConfigurationRequest struct {
	PartID   string
	Material *string
	Process  *string
	Quantity *int
}

// Part represents a part record at the port boundary.
type Part struct {
	ID        string
	Material  string
	Process   string
	Quantity  int
	Score     int
	Findings  []*Finding
	Stale     bool // score was computed for a different selection, or never
	Intent    DesignIntent
	Revision  int64
	CreatedAt string
	UpdatedAt string
}

// Finding represents one DFM concern at the port boundary.
type Finding struct {
	ID           string
	Code         string
	IssueType    string
	Description  string
	Severity     string
	SuggestedFix string
}

// ActivityEntry represents one activity log line.
type ActivityEntry struct {
	ID        string
	PartID    string
	Action    string
	Detail    string
	Actor     string
	CreatedAt string
}

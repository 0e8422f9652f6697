// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) when a part, snapshot or vendor is absent.
var ErrNotFound = errors.New("not found")

// ErrRevisionConflict is returned when an update carries a stale revision.
var ErrRevisionConflict = errors.New("revision conflict")

// PartRepository defines the secondary port for part record persistence.
type PartRepository interface {
	// GetByID retrieves a part by its ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*PartRecord, error)

	// Create persists a new part at revision 1.
	Create(ctx context.Context, part *PartRecord) error

	// Update writes the record if its Revision matches the stored one and
	// bumps part.Revision on success. Returns ErrRevisionConflict otherwise.
	Update(ctx context.Context, part *PartRecord) error

	// List retrieves all parts ordered by ID.
	List(ctx context.Context) ([]*PartRecord, error)
}

// PartRecord represents a part as stored in persistence.
type PartRecord struct {
	ID       string
	Material string
	Process  string
	Quantity int

	Score             int
	Findings          []FindingRecord
	Evaluated         bool   // a score has been computed at least once
	EvaluatedMaterial string // selection the stored score was computed against
	EvaluatedProcess  string

	UseCase           string
	Environment       string
	ProductionScale   string
	LoadCondition     string
	FinishRequirement string

	Revision  int64
	CreatedAt string
	UpdatedAt string
}

// FindingRecord is one stored DFM finding.
type FindingRecord struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	IssueType    string `json:"issue_type"`
	Description  string `json:"description"`
	Severity     string `json:"severity"`
	SuggestedFix string `json:"suggested_fix"`
}

package primary

import "context"

// MaterialService defines the primary port for the material catalog.
type MaterialService interface {
	// ListMaterials returns the whole catalog.
	ListMaterials(ctx context.Context) ([]*Material, error)

	// GetMaterial looks a material up by name (case-insensitive).
	GetMaterial(ctx context.Context, name string) (*Material, error)

	// Recommend returns up to three materials for a process and use case.
	Recommend(ctx context.Context, process, useCase string) ([]*Material, error)
}

// Material represents a catalog material at the port boundary.
type Material struct {
	Name                 string
	Category             string
	ProcessCompatibility []string
	SuitabilityTags      []string
	MinWallThicknessMM   float64
	MinDraftAngleDeg     float64
}

package app

import (
	"context"
	"fmt"

	"github.com/example/foundry/internal/core/material"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/ports/secondary"
)

// MaterialServiceImpl implements the MaterialService interface over a
// catalog loaded once at startup.
type MaterialServiceImpl struct {
	catalog *material.Catalog
}

// NewMaterialService creates a new MaterialService over a loaded catalog.
func NewMaterialService(catalog *material.Catalog) *MaterialServiceImpl {
	return &MaterialServiceImpl{catalog: catalog}
}

// LoadMaterialCatalog reads every spec from the source into an immutable catalog.
func LoadMaterialCatalog(ctx context.Context, source secondary.MaterialSource) (*material.Catalog, error) {
	records, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load material catalog: %w", err)
	}

	specs := make([]material.Spec, len(records))
	for i, r := range records {
		specs[i] = material.Spec{
			Name:                 r.Name,
			Category:             r.Category,
			ProcessCompatibility: r.ProcessCompatibility,
			SuitabilityTags:      r.SuitabilityTags,
			MinWallThicknessMM:   r.MinWallThicknessMM,
			MinDraftAngleDeg:     r.MinDraftAngleDeg,
		}
	}
	return material.NewCatalog(specs), nil
}

// ListMaterials returns the whole catalog.
func (s *MaterialServiceImpl) ListMaterials(ctx context.Context) ([]*primary.Material, error) {
	return specsToPrimary(s.catalog.All()), nil
}

// GetMaterial looks a material up by name.
func (s *MaterialServiceImpl) GetMaterial(ctx context.Context, name string) (*primary.Material, error) {
	spec, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("material %q: %w", name, secondary.ErrNotFound)
	}
	return specToPrimary(spec), nil
}

// Recommend returns up to three materials for a process and use case.
func (s *MaterialServiceImpl) Recommend(ctx context.Context, process, useCase string) ([]*primary.Material, error) {
	return specsToPrimary(s.catalog.Recommend(process, useCase, material.DefaultRecommendationLimit)), nil
}

func specToPrimary(spec material.Spec) *primary.Material {
	return &primary.Material{
		Name:                 spec.Name,
		Category:             spec.Category,
		ProcessCompatibility: spec.ProcessCompatibility,
		SuitabilityTags:      spec.SuitabilityTags,
		MinWallThicknessMM:   spec.MinWallThicknessMM,
		MinDraftAngleDeg:     spec.MinDraftAngleDeg,
	}
}

func specsToPrimary(specs []material.Spec) []*primary.Material {
	out := make([]*primary.Material, len(specs))
	for i, spec := range specs {
		out[i] = specToPrimary(spec)
	}
	return out
}

// Ensure MaterialServiceImpl implements the interface
var _ primary.MaterialService = (*MaterialServiceImpl)(nil)

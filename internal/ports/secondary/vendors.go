package secondary

import "context"

// VendorRepository defines the secondary port for the vendor pool.
type VendorRepository interface {
	// List retrieves every vendor ordered by ID. Ranking scans the full pool.
	List(ctx context.Context) ([]*VendorRecord, error)

	// GetByID retrieves a vendor. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*VendorRecord, error)

	// Create adds a vendor to the pool.
	Create(ctx context.Context, vendor *VendorRecord) error
}

// VendorRecord represents a vendor as stored in persistence.
type VendorRecord struct {
	ID          string
	Name        string
	City        string
	Tier        int
	Processes   []string
	Materials   []string
	MinOrderQty int
	Contact     string
	CreatedAt   string
}

// MaterialSource defines the secondary port for the material reference data.
type MaterialSource interface {
	// List returns every material spec known to the source.
	List(ctx context.Context) ([]MaterialRecord, error)
}

// MaterialRecord is one material spec as read from its source document.
type MaterialRecord struct {
	Name                 string   `yaml:"name"`
	Category             string   `yaml:"category"`
	ProcessCompatibility []string `yaml:"process_compatibility"`
	SuitabilityTags      []string `yaml:"suitability_tags"`
	MinWallThicknessMM   float64  `yaml:"min_wall_thickness_mm"`
	MinDraftAngleDeg     float64  `yaml:"min_draft_angle_deg"`
}

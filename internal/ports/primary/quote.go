package primary

import "context"

// QuoteService defines the primary port for quotes.
type QuoteService interface {
	// Quote prices the part's current selection and picks the top vendor.
	Quote(ctx context.Context, partID string) (*Quote, error)

	// HandoffGuide tells what kind of vendor to send the part to and what to
	// prepare for them.
	HandoffGuide(ctx context.Context, partID string) (*HandoffGuide, error)
}

// Quote is the combined cost and sourcing answer for a part.
type Quote struct {
	PartID       string
	Process      string
	Material     string
	Quantity     int
	SetupCost    float64
	UnitCost     float64
	TotalCost    float64
	CostPerPart  float64
	LeadTimeDays int
	TopVendor    *VendorMatch // nil when no vendor qualifies
}

// HandoffGuide is the vendor handoff package for a part.
type HandoffGuide struct {
	PartID     string
	VendorType string
	FileTypes  []string
	Checklist  []string
	Material   string
	Process    string
	Quantity   int
}

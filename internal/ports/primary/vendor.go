package primary

import "context"

// VendorService defines the primary port for vendor sourcing.
type VendorService interface {
	// RankForPart ranks vendors against the part's current selection.
	RankForPart(ctx context.Context, partID string) ([]*VendorMatch, error)

	// Rank ranks vendors against an arbitrary request.
	Rank(ctx context.Context, req RankVendorsRequest) ([]*VendorMatch, error)

	// ListVendors returns the whole pool.
	ListVendors(ctx context.Context) ([]*Vendor, error)

	// AddVendor adds a vendor to the pool.
	AddVendor(ctx context.Context, req AddVendorRequest) (*Vendor, error)
}

// RankVendorsRequest contains what a part needs from a vendor.
type RankVendorsRequest struct {
	Process  string
	Material string
	Quantity int
}

// AddVendorRequest contains parameters for adding a vendor.
type AddVendorRequest struct {
	VendorID    string
	Name        string
	City        string
	Tier        int
	Processes   []string
	Materials   []string
	MinOrderQty int
	Contact     string
}

// Vendor represents a pool vendor at the port boundary.
type Vendor struct {
	ID          string
	Name        string
	City        string
	Tier        int
	Processes   []string
	Materials   []string
	MinOrderQty int
	Contact     string
}

// VendorMatch is a qualifying vendor with its score.
type VendorMatch struct {
	Vendor
	Score int
	Notes string
}

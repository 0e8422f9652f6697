// Package part contains pure validation guards and derived-state rules for
// part records.
// This is part of the Functional Core - no I/O, only pure functions.
package part

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks a request that is structurally invalid.
var ErrInvalidInput = errors.New("invalid input")

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an ErrInvalidInput-wrapped error if not
// allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, r.Reason)
}

func allowed() GuardResult { return GuardResult{Allowed: true} }

func denied(format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// CheckPartID requires a non-blank part ID.
func CheckPartID(partID string) GuardResult {
	if strings.TrimSpace(partID) == "" {
		return denied("part ID is required")
	}
	return allowed()
}

// CheckQuantity requires a positive quantity where one is structurally needed.
func CheckQuantity(quantity int) GuardResult {
	if quantity <= 0 {
		return denied("quantity must be positive (got %d)", quantity)
	}
	return allowed()
}

// SelectionChange is a partial update of a part's configuration.
// Nil fields are left unchanged.
type SelectionChange struct {
	Material *string
	Process  *string
	Quantity *int
}

// CheckSelectionChange requires at least one field and a positive quantity when given.
func CheckSelectionChange(c SelectionChange) GuardResult {
	if c.Material == nil && c.Process == nil && c.Quantity == nil {
		return denied("nothing to change: provide material, process, or quantity")
	}
	if c.Quantity != nil {
		return CheckQuantity(*c.Quantity)
	}
	return allowed()
}

// SimulationContext is the input to CheckSimulation.
type SimulationContext struct {
	PartID   string
	Process  string
	Material string
	Quantity *int
}

// CheckSimulation validates a what-if request. Process and material must be
// given; nonsensical values are allowed and fall back during evaluation.
func CheckSimulation(ctx SimulationContext) GuardResult {
	if r := CheckPartID(ctx.PartID); !r.Allowed {
		return r
	}
	if strings.TrimSpace(ctx.Process) == "" {
		return denied("what-if for %s needs a process", ctx.PartID)
	}
	if strings.TrimSpace(ctx.Material) == "" {
		return denied("what-if for %s needs a material", ctx.PartID)
	}
	if ctx.Quantity != nil {
		return CheckQuantity(*ctx.Quantity)
	}
	return allowed()
}

// VendorContext is the input to CheckVendor.
type VendorContext struct {
	VendorID    string
	Name        string
	Tier        int
	Processes   []string
	Materials   []string
	MinOrderQty int
}

// CheckVendor validates a vendor before it enters the pool.
func CheckVendor(ctx VendorContext) GuardResult {
	if strings.TrimSpace(ctx.VendorID) == "" {
		return denied("vendor ID is required")
	}
	if strings.TrimSpace(ctx.Name) == "" {
		return denied("vendor %s needs a name", ctx.VendorID)
	}
	if ctx.Tier < 1 {
		return denied("vendor %s tier must be 1 or greater (got %d)", ctx.VendorID, ctx.Tier)
	}
	if len(ctx.Processes) == 0 || len(ctx.Materials) == 0 {
		return denied("vendor %s must list at least one process and one material", ctx.VendorID)
	}
	if ctx.MinOrderQty < 0 {
		return denied("vendor %s minimum order quantity cannot be negative", ctx.VendorID)
	}
	return allowed()
}

// CheckVersionName requires a non-blank snapshot name.
func CheckVersionName(name string) GuardResult {
	if strings.TrimSpace(name) == "" {
		return denied("version name is required")
	}
	return allowed()
}

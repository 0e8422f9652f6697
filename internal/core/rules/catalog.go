// Package rules contains the DFM rule catalog and the routing table that picks
// a rule set for a material/process pair.
// This is part of the Functional Core - no I/O, only pure functions.
package rules

// Severity is the impact level of a DFM finding.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RuleSetID identifies an ordered list of finding templates.
type RuleSetID string

const (
	RuleSetInjectionMolding   RuleSetID = "injection_molding"
	RuleSetVacuumForming      RuleSetID = "vacuum_forming"
	RuleSetThermoforming      RuleSetID = "thermoforming"
	RuleSetBlowMolding        RuleSetID = "blow_molding"
	RuleSetCompressionMolding RuleSetID = "compression_molding"
	RuleSetFDM                RuleSetID = "fdm"
	RuleSetDieCasting         RuleSetID = "die_casting"
	RuleSetCNC                RuleSetID = "cnc"
	RuleSetSheetMetal         RuleSetID = "sheet_metal"
	RuleSetTurning            RuleSetID = "turning"
	RuleSetWoodTurning        RuleSetID = "wood_turning"
	RuleSetPostProcessing     RuleSetID = "post_processing"
)

// Template is one finding a rule set emits for every part routed to it.
type Template struct {
	Code         string // stable slug, e.g. "missing-draft-angle"
	IssueType    string
	Description  string
	Severity     Severity
	SuggestedFix string
}

// Catalog maps rule set IDs to their ordered templates.
// A catalog is immutable after construction; Templates always returns a copy.
type Catalog struct {
	sets     map[RuleSetID][]Template
	fallback RuleSetID
}

// NewCatalog builds a catalog from the given sets.
// fallback is returned for any ID that has no entry; it must be present and non-empty,
// otherwise NewCatalog panics since the evaluator could return zero findings.
func NewCatalog(sets map[RuleSetID][]Template, fallback RuleSetID) *Catalog {
	if len(sets[fallback]) == 0 {
		panic("rules: fallback rule set " + string(fallback) + " is empty")
	}
	copied := make(map[RuleSetID][]Template, len(sets))
	for id, templates := range sets {
		copied[id] = append([]Template(nil), templates...)
	}
	return &Catalog{sets: copied, fallback: fallback}
}

// Templates returns the templates for id, or the fallback set if id is unknown.
func (c *Catalog) Templates(id RuleSetID) []Template {
	templates, ok := c.sets[id]
	if !ok || len(templates) == 0 {
		templates = c.sets[c.fallback]
	}
	return append([]Template(nil), templates...)
}

// Has reports whether the catalog defines id.
func (c *Catalog) Has(id RuleSetID) bool {
	_, ok := c.sets[id]
	return ok
}

// Fallback returns the rule set used when nothing else applies.
func (c *Catalog) Fallback() RuleSetID {
	return c.fallback
}

// DefaultCatalog returns the built-in rule catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultSets, RuleSetPostProcessing)
}

var defaultSets = map[RuleSetID][]Template{
	RuleSetInjectionMolding: {
		{"missing-draft-angle", "Missing Draft Angle", "Vertical walls lack draft angle. This may cause part sticking in mold.", SeverityHigh, "Add 1.5° draft to all vertical faces."},
		{"thick-section", "Thick Section", "Thick area >5mm can cause sink marks or warping.", SeverityMedium, "Reduce thickness or core out the section."},
	},
	RuleSetVacuumForming: {
		{"insufficient-draft-angle", "Insufficient Draft Angle", "Vertical walls need a minimum draft of 4-6° for easy mold release.", SeverityHigh, "Add at least 5° draft on all vertical surfaces."},
		{"sharp-internal-corners", "Sharp Internal Corners", "Sharp corners prevent proper sheet stretch and cause tearing.", SeverityMedium, "Use fillets of at least 2mm on all inner corners."},
	},
	RuleSetThermoforming: {
		{"insufficient-draft-angle", "Insufficient Draft Angle", "Thermoformed parts need draft to be ejected cleanly from mold.", SeverityHigh, "Add draft angle of ≥ 3° to all vertical faces."},
		{"deep-draw-ratio", "Deep Draw Ratio Exceeded", "Draw depth more than 2-3x the width may cause thinning or tearing.", SeverityHigh, "Reduce draw depth or use stepped features."},
	},
	RuleSetBlowMolding: {
		{"uneven-wall-distribution", "Uneven Wall Distribution", "Blow molding may result in non-uniform walls if geometry is not symmetric or guided well.", SeverityMedium, "Ensure consistent wall thickness through part design or control features."},
		{"sharp-corners", "Sharp Corners", "Sharp transitions can weaken the plastic as it stretches unevenly.", SeverityMedium, "Use fillets ≥ 2mm in all corners."},
	},
	RuleSetCompressionMolding: {
		{"inconsistent-thickness", "Inconsistent Thickness", "Varying wall thickness causes uneven curing and weak spots in molded rubber.", SeverityHigh, "Keep thickness uniform throughout mold cavity."},
		{"missing-air-escape", "Missing Air Escape", "Lack of vent paths traps air and creates voids.", SeverityMedium, "Add vent features or split parting lines."},
	},
	RuleSetFDM: {
		{"unsupported-overhang", "Unsupported Overhang", "Overhangs exceeding 45° without support may collapse or cause poor surface finish.", SeverityMedium, "Add support or redesign overhang to be ≤ 45°."},
		{"thin-wall", "Thin Wall", "Walls below 0.8mm may not print properly or warp.", SeverityHigh, "Increase wall thickness to ≥ 1mm."},
		{"large-flat-area", "Large Flat Area", "Large flat bottom surfaces may warp due to uneven cooling.", SeverityLow, "Add ribs or reduce area size."},
	},
	RuleSetDieCasting: {
		{"thick-section", "Thick Section", "Thick areas in die casting can lead to shrinkage porosity.", SeverityHigh, "Core out or maintain uniform thickness throughout."},
		{"no-draft-angle", "No Draft Angle", "Die cast parts require draft to avoid sticking in die.", SeverityHigh, "Add 1-3° draft on all external walls."},
	},
	RuleSetCNC: {
		{"sharp-internal-corner", "Sharp Internal Corner", "Detected internal corner with 0° radius. CNC tools cannot cut sharp internal corners.", SeverityMedium, "Add fillet of at least 2mm radius."},
		{"thin-wall", "Thin Wall", "Wall thickness below 1.0mm may cause chatter or breakage during machining.", SeverityHigh, "Increase wall thickness to 1.5mm or more."},
	},
	RuleSetSheetMetal: {
		{"tight-bend-radius", "Tight Bend Radius", "Bend radius less than material thickness can cause cracking.", SeverityHigh, "Ensure bend radius ≥ material thickness."},
		{"no-relief-cut", "No Relief Cut", "Missing relief near corner bend may cause tearing.", SeverityMedium, "Add relief cut or notch near bend region."},
	},
	RuleSetTurning: {
		{"deep-groove", "Deep Groove or Undercut", "Deep grooves may require special tools or result in chatter.", SeverityMedium, "Reduce groove depth or use standard radii."},
		{"unchuckable-geometry", "Unchuckable Geometry", "Part shape may not fit standard lathe chuck.", SeverityHigh, "Redesign ends or provide gripping features."},
	},
	RuleSetWoodTurning: {
		{"too-thin-geometry", "Too Thin Geometry", "Thin wooden features may crack under turning forces.", SeverityHigh, "Ensure minimum diameter ≥ 10mm for unsupported sections."},
		{"sharp-transitions", "Sharp Transitions", "Sudden changes in diameter weaken structural integrity during rotation.", SeverityMedium, "Use smooth tapers instead of steps."},
	},
	RuleSetPostProcessing: {
		{"polishing-difficult-area", "Polishing Difficult Area", "Tight or internal geometries are hard to polish or deburr.", SeverityLow, "Simplify or open geometry for accessibility."},
		{"sharp-edge", "Sharp Edge", "Sharp external edges increase post-processing time and safety risk.", SeverityMedium, "Use 0.5-1mm chamfer or fillet."},
	},
}

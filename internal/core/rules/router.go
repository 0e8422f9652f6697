package rules

import "strings"

// Material families in match order. The first family found in the material
// string wins, so "plastic-coated metal" routes as plastic.
const (
	FamilyPlastic = "plastic"
	FamilyRubber  = "rubber"
	FamilyMetal   = "metal"
	FamilyWood    = "wood"
)

// Route is one row of the routing table.
// A row applies when the part's material family equals Family and the process
// contains any of ProcessKeywords.
type Route struct {
	Family          string
	ProcessKeywords []string
	RuleSet         RuleSetID
}

// Router picks a rule set for a material/process pair by walking an ordered table.
type Router struct {
	families []string
	routes   []Route
	fallback RuleSetID
}

// NewRouter creates a router. families is the material family match order;
// fallback is the mandatory default row used when no route applies.
func NewRouter(families []string, routes []Route, fallback RuleSetID) *Router {
	return &Router{
		families: append([]string(nil), families...),
		routes:   append([]Route(nil), routes...),
		fallback: fallback,
	}
}

// DefaultRouter returns the built-in routing table.
func DefaultRouter() *Router {
	return NewRouter(
		[]string{FamilyPlastic, FamilyRubber, FamilyMetal, FamilyWood},
		DefaultRoutes(),
		RuleSetPostProcessing,
	)
}

// DefaultRoutes returns the built-in routing rows in evaluation order.
func DefaultRoutes() []Route {
	return []Route{
		{FamilyPlastic, []string{"injection"}, RuleSetInjectionMolding},
		{FamilyPlastic, []string{"vacuum"}, RuleSetVacuumForming},
		{FamilyPlastic, []string{"thermo"}, RuleSetThermoforming},
		{FamilyPlastic, []string{"blow"}, RuleSetBlowMolding},
		{FamilyPlastic, []string{"compression"}, RuleSetCompressionMolding},
		{FamilyPlastic, []string{"fdm"}, RuleSetFDM},
		{FamilyRubber, []string{"compression"}, RuleSetCompressionMolding},
		{FamilyMetal, []string{"die cast"}, RuleSetDieCasting},
		{FamilyMetal, []string{"cnc", "machining"}, RuleSetCNC},
		{FamilyMetal, []string{"sheet"}, RuleSetSheetMetal},
		{FamilyMetal, []string{"turning", "lathe"}, RuleSetTurning},
		{FamilyWood, []string{"turning"}, RuleSetWoodTurning},
	}
}

// Family returns the material family for material, or "" if none matches.
// Matching is a case-insensitive substring test.
func (r *Router) Family(material string) string {
	material = strings.ToLower(material)
	for _, family := range r.families {
		if strings.Contains(material, family) {
			return family
		}
	}
	return ""
}

// Route returns the rule set for the pair. It never returns an empty ID.
func (r *Router) Route(material, process string) RuleSetID {
	family := r.Family(material)
	if family == "" {
		return r.fallback
	}

	process = strings.ToLower(process)
	for _, route := range r.routes {
		if route.Family != family {
			continue
		}
		for _, keyword := range route.ProcessKeywords {
			if strings.Contains(process, keyword) {
				return route.RuleSet
			}
		}
	}
	return r.fallback
}

// Routes returns a copy of the routing table.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

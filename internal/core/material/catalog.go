// Package material holds the read-only material reference catalog used for
// DFM thresholds and material recommendations.
// This is part of the Functional Core - no I/O, only pure functions.
package material

import "strings"

// Spec describes one material and its manufacturing thresholds.
// A zero threshold means "not specified" and resolves to the default.
type Spec struct {
	Name                 string
	Category             string
	ProcessCompatibility []string
	SuitabilityTags      []string
	MinWallThicknessMM   float64
	MinDraftAngleDeg     float64
}

// Thresholds are the geometric minimums a material imposes.
type Thresholds struct {
	MinWallThicknessMM float64
	MinDraftAngleDeg   float64
}

// DefaultThresholds apply to materials missing from the catalog.
// They are below both finding triggers, so an unknown material adds no findings.
var DefaultThresholds = Thresholds{
	MinWallThicknessMM: 1.0,
	MinDraftAngleDeg:   0.5,
}

// DefaultRecommendationLimit caps Recommend results.
const DefaultRecommendationLimit = 3

// Catalog is an immutable, case-insensitive index of material specs.
type Catalog struct {
	specs  []Spec
	byName map[string]int
}

// NewCatalog indexes specs by lower-cased name. Later duplicates are ignored.
func NewCatalog(specs []Spec) *Catalog {
	c := &Catalog{
		specs:  make([]Spec, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		key := normalize(s.Name)
		if key == "" {
			continue
		}
		if _, dup := c.byName[key]; dup {
			continue
		}
		c.byName[key] = len(c.specs)
		c.specs = append(c.specs, cloneSpec(s))
	}
	return c
}

// Lookup finds a material by name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (Spec, bool) {
	idx, ok := c.byName[normalize(name)]
	if !ok {
		return Spec{}, false
	}
	return cloneSpec(c.specs[idx]), true
}

// Thresholds returns the material's thresholds, or DefaultThresholds when the
// material is unknown. Unset fields on a known material also take the default.
func (c *Catalog) Thresholds(name string) Thresholds {
	spec, ok := c.Lookup(name)
	if !ok {
		return DefaultThresholds
	}
	t := Thresholds{
		MinWallThicknessMM: spec.MinWallThicknessMM,
		MinDraftAngleDeg:   spec.MinDraftAngleDeg,
	}
	if t.MinWallThicknessMM <= 0 {
		t.MinWallThicknessMM = DefaultThresholds.MinWallThicknessMM
	}
	if t.MinDraftAngleDeg <= 0 {
		t.MinDraftAngleDeg = DefaultThresholds.MinDraftAngleDeg
	}
	return t
}

// All returns every spec in catalog order.
func (c *Catalog) All() []Spec {
	out := make([]Spec, len(c.specs))
	for i, s := range c.specs {
		out[i] = cloneSpec(s)
	}
	return out
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Recommend returns up to limit materials compatible with process whose
// suitability tags mention useCase. Both tests are case-insensitive; the
// process must equal a compatibility entry, the use case may be a substring
// of the joined tags. limit <= 0 uses DefaultRecommendationLimit.
func (c *Catalog) Recommend(process, useCase string, limit int) []Spec {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	process = normalize(process)
	useCase = normalize(useCase)

	var out []Spec
	for _, s := range c.specs {
		if !containsFold(s.ProcessCompatibility, process) {
			continue
		}
		tags := strings.ToLower(strings.Join(s.SuitabilityTags, " "))
		if !strings.Contains(tags, useCase) {
			continue
		}
		out = append(out, cloneSpec(s))
		if len(out) == limit {
			break
		}
	}
	return out
}

// IsCompatible reports whether the material lists process as compatible.
// Unknown materials are reported as incompatible.
func (c *Catalog) IsCompatible(name, process string) bool {
	spec, ok := c.Lookup(name)
	if !ok {
		return false
	}
	return containsFold(spec.ProcessCompatibility, normalize(process))
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if normalize(v) == want {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cloneSpec(s Spec) Spec {
	s.ProcessCompatibility = append([]string(nil), s.ProcessCompatibility...)
	s.SuitabilityTags = append([]string(nil), s.SuitabilityTags...)
	return s
}

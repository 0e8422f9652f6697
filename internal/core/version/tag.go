package version

// Suggested milestone tags.
const (
	TagForProduction = "For Production"
	TagPrototype     = "Prototype"
	TagDeprecated    = "Deprecated"
)

// Thresholds for SuggestTag.
const (
	productionScore    = 90
	productionQuantity = 1000
	prototypeScore     = 75
	prototypeQuantity  = 500
	deprecatedScore    = 70
)

// SuggestTag proposes a milestone tag from a part's score and quantity.
// Rules are checked in order; a part matching none is Untitled.
func SuggestTag(score, quantity int) string {
	switch {
	case score >= productionScore && quantity >= productionQuantity:
		return TagForProduction
	case score >= prototypeScore && quantity < prototypeQuantity:
		return TagPrototype
	case score < deprecatedScore:
		return TagDeprecated
	default:
		return UntitledTag
	}
}

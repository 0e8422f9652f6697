package part

import "strings"

// Selection is the material/process pair a score depends on.
type Selection struct {
	Material string
	Process  string
}

// IsStale reports whether a stored score no longer describes the current
// selection. The score is never recomputed here; callers surface the flag.
// A part that was never evaluated is stale once anything is selected.
func IsStale(current, evaluated Selection, hasEvaluation bool) bool {
	if !hasEvaluation {
		return current.Material != "" || current.Process != ""
	}
	return !strings.EqualFold(strings.TrimSpace(current.Material), strings.TrimSpace(evaluated.Material)) ||
		!strings.EqualFold(strings.TrimSpace(current.Process), strings.TrimSpace(evaluated.Process))
}

// EffectiveQuantity maps an absent quantity (zero) to 1.
func EffectiveQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

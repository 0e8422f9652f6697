package dfm

import "github.com/example/foundry/internal/core/rules"

// MaxScore is the score of a part with no findings.
const MaxScore = 100

var severityPenalty = map[rules.Severity]int{
	rules.SeverityHigh:   20,
	rules.SeverityMedium: 10,
	rules.SeverityLow:    5,
}

// Penalty returns the score deduction for a severity. Unknown severities cost nothing.
func Penalty(s rules.Severity) int {
	return severityPenalty[s]
}

// Score computes max(0, 100 - sum of penalties).
func Score(findings []Finding) int {
	score := MaxScore
	for _, f := range findings {
		score -= Penalty(f.Severity)
	}
	if score < 0 {
		return 0
	}
	return score
}

// KnownSeverity reports whether s carries a penalty.
func KnownSeverity(s rules.Severity) bool {
	_, ok := severityPenalty[s]
	return ok
}

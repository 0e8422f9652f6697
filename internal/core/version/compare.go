// Package version contains pure comparison logic over part snapshots.
// This is part of the Functional Core - no I/O, only pure functions.
package version

import (
	"sort"
	"strconv"
	"strings"

	"github.com/example/foundry/internal/core/cost"
)

// UntitledTag is reported for snapshots that were never tagged.
const UntitledTag = "Untitled"

// NotFoundMessage is the Diff message when a snapshot is missing.
const NotFoundMessage = "one or both versions not found"

// Score directions.
const (
	DirectionImproved  = "improved"
	DirectionRegressed = "regressed"
	DirectionUnchanged = "unchanged"
)

// Snapshot is the comparable view of a stored part snapshot.
type Snapshot struct {
	Version     string
	Tag         string
	Material    string
	Process     string
	Quantity    int
	Score       int
	IssueCount  int
	CostPerPart float64
	Fixes       []string
}

// Diff is the structured comparison of two snapshots.
// When Found is false only PartID, versions and Message are set.
type Diff struct {
	PartID   string
	VersionA string
	VersionB string
	Found    bool
	Message  string

	TagA string
	TagB string

	ScoreA         int
	ScoreB         int
	ScoreDelta     int
	ScoreDirection string

	IssuesA     int
	IssuesB     int
	IssuesDelta int

	MaterialA string
	MaterialB string
	ProcessA  string
	ProcessB  string

	CostPerPartA float64
	CostPerPartB float64
	CostDelta    float64

	FixesApplied []string
}

// Compare diffs b against a. A nil snapshot produces a not-found Diff rather
// than an error.
func Compare(partID, versionA, versionB string, a, b *Snapshot) Diff {
	d := Diff{
		PartID:   partID,
		VersionA: versionA,
		VersionB: versionB,
	}
	if a == nil || b == nil {
		d.Message = NotFoundMessage
		return d
	}

	d.Found = true
	d.TagA = tagOrUntitled(a.Tag)
	d.TagB = tagOrUntitled(b.Tag)

	d.ScoreA = a.Score
	d.ScoreB = b.Score
	d.ScoreDelta = b.Score - a.Score
	d.ScoreDirection = Direction(d.ScoreDelta)

	d.IssuesA = a.IssueCount
	d.IssuesB = b.IssueCount
	d.IssuesDelta = b.IssueCount - a.IssueCount

	d.MaterialA, d.MaterialB = a.Material, b.Material
	d.ProcessA, d.ProcessB = a.Process, b.Process

	d.CostPerPartA = a.CostPerPart
	d.CostPerPartB = b.CostPerPart
	d.CostDelta = cost.Round2(b.CostPerPart - a.CostPerPart)

	d.FixesApplied = FixesApplied(a.Fixes, b.Fixes)
	return d
}

// Direction classifies a score delta.
func Direction(delta int) string {
	switch {
	case delta > 0:
		return DirectionImproved
	case delta < 0:
		return DirectionRegressed
	default:
		return DirectionUnchanged
	}
}

// FixesApplied returns the set difference after - before, sorted, duplicates collapsed.
func FixesApplied(before, after []string) []string {
	seen := make(map[string]bool, len(before))
	for _, f := range before {
		seen[f] = true
	}

	out := []string{}
	for _, f := range after {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// TimelineEntry is one row of a part's version history.
type TimelineEntry struct {
	Version     string
	Tag         string
	Score       int
	CostPerPart float64
	Material    string
	Process     string
}

// Timeline orders snapshots by version number (v2 before v10).
func Timeline(snapshots []Snapshot) []TimelineEntry {
	sorted := append([]Snapshot(nil), snapshots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i].Version, sorted[j].Version)
	})

	out := make([]TimelineEntry, len(sorted))
	for i, s := range sorted {
		out[i] = TimelineEntry{
			Version:     s.Version,
			Tag:         tagOrUntitled(s.Tag),
			Score:       s.Score,
			CostPerPart: s.CostPerPart,
			Material:    s.Material,
			Process:     s.Process,
		}
	}
	return out
}

// Less orders version names. Names of the form "v<N>" compare numerically and
// sort before any other name; everything else compares lexically.
func Less(a, b string) bool {
	na, okA := Number(a)
	nb, okB := Number(b)
	switch {
	case okA && okB:
		return na < nb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

// Number parses "v12" (any case) into 12.
func Number(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, "v") {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Next returns the version name after the highest "v<N>" in existing, or "v1".
func Next(existing []string) string {
	highest := 0
	for _, name := range existing {
		if n, ok := Number(name); ok && n > highest {
			highest = n
		}
	}
	return "v" + strconv.Itoa(highest+1)
}

func tagOrUntitled(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return UntitledTag
	}
	return tag
}

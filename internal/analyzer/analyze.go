package analyzer

import (
	"log/slog"
	"sort"
)

// Finding is a reported key: defined by several distinct profiles, either
// all agreeing or not.
type Finding struct {
	Key            string
	Classification Classification
	Sources        []Source
}

// Result is the outcome of analyzing a set of key groups.
type Result struct {
	// Findings are the ConflictFree and Conflicting groups, sorted by key.
	Findings []Finding

	// Unique counts keys defined exactly once.
	Unique int

	// Suppressed lists keys hidden because a profile name repeats.
	Suppressed []string
}

// Analyze classifies every group and keeps the reportable ones.
func Analyze(groups []KeyGroup) Result {
	var res Result
	for _, g := range groups {
		c := Classify(g)
		switch c {
		case Unique:
			res.Unique++
		case SameProfileRepeat:
			res.Suppressed = append(res.Suppressed, g.Key)
			slog.Debug("suppressing key defined repeatedly under one profile name",
				"key", g.Key, "unnamed", hasUnnamedSource(g.Sources))
		default:
			res.Findings = append(res.Findings, Finding{Key: g.Key, Classification: c, Sources: g.Sources})
		}
	}

	sort.Slice(res.Findings, func(i, j int) bool {
		return res.Findings[i].Key < res.Findings[j].Key
	})
	sort.Strings(res.Suppressed)
	return res
}

// Count returns the number of findings with classification c.
func (r Result) Count(c Classification) int {
	n := 0
	for _, f := range r.Findings {
		if f.Classification == c {
			n++
		}
	}
	return n
}

func hasUnnamedSource(sources []Source) bool {
	for _, s := range sources {
		if s.Profile == "" {
			return true
		}
	}
	return false
}

package analyzer

import (
	"fmt"

	"github.com/danieljhkim/dupekeys/internal/value"
)

// Classification describes how the definitions of a key relate.
type Classification int

const (
	// Unique means at most one definition exists.
	Unique Classification = iota

	// SameProfileRepeat means a profile name occurs more than once. Such
	// groups are never reported.
	SameProfileRepeat

	// ConflictFree means distinct profiles all set the same value.
	ConflictFree

	// Conflicting means distinct profiles set different values.
	Conflicting
)

func (c Classification) String() string {
	switch c {
	case Unique:
		return "unique"
	case SameProfileRepeat:
		return "same-profile-repeat"
	case ConflictFree:
		return "conflict-free"
	case Conflicting:
		return "conflicting"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// MarshalText encodes the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Reported reports whether groups with this classification are shown.
func (c Classification) Reported() bool {
	return c == ConflictFree || c == Conflicting
}

// Classify labels a group.
func Classify(g KeyGroup) Classification {
	if len(g.Sources) <= 1 {
		return Unique
	}
	if hasRepeatedProfile(g.Sources) {
		return SameProfileRepeat
	}
	if valuesAgree(g.Sources) {
		return ConflictFree
	}
	return Conflicting
}

// hasRepeatedProfile reports whether any profile name occurs twice.
func hasRepeatedProfile(sources []Source) bool {
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if _, ok := seen[s.Profile]; ok {
			return true
		}
		seen[s.Profile] = struct{}{}
	}
	return false
}

// valuesAgree compares every value with the first one. A non-comparable
// first value makes the group agree; non-comparable later values are
// skipped.
func valuesAgree(sources []Source) bool {
	first := sources[0].Value
	if !first.Comparable() {
		return true
	}
	for _, s := range sources[1:] {
		if !s.Value.Comparable() {
			continue
		}
		if !value.Equal(first, s.Value) {
			return false
		}
	}
	return true
}

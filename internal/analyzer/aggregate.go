package analyzer

import (
	"github.com/danieljhkim/dupekeys/internal/value"
)

// Source is one profile's definition of a key.
type Source struct {
	Profile string      `json:"profile" yaml:"profile"`
	Value   value.Value `json:"value" yaml:"value"`
}

// KeyGroup collects every definition of one preference key in discovery
// order.
type KeyGroup struct {
	Key     string
	Sources []Source
}

// Aggregate groups entries by key. Groups appear in the order their key was
// first seen and keep their sources in entry order; no entry is dropped.
func Aggregate(entries []Entry) []KeyGroup {
	index := make(map[string]int)
	var groups []KeyGroup

	for _, e := range entries {
		i, ok := index[e.Key]
		if !ok {
			i = len(groups)
			index[e.Key] = i
			groups = append(groups, KeyGroup{Key: e.Key})
		}
		groups[i].Sources = append(groups[i].Sources, Source{Profile: e.Profile, Value: e.Value})
	}
	return groups
}

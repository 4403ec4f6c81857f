package engine

import (
	"time"

	"github.com/danieljhkim/dupekeys/internal/analyzer"
	"github.com/danieljhkim/dupekeys/internal/value"
)

// CheckResult represents the outcome of a duplicate-key check.
type CheckResult struct {
	// GeneratedAt is when the check ran
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Source describes where the profile listing came from
	Source string `json:"source" yaml:"source"`

	// Width is the truncation width used for Display strings
	Width int `json:"width" yaml:"width"`

	// Profiles is the number of computer-level profiles decoded
	Profiles int `json:"profiles" yaml:"profiles"`

	// PayloadItems is the number of payload items across all profiles
	PayloadItems int `json:"payload_items" yaml:"payload_items"`

	// SkippedItems counts payload items without a PayloadContent dictionary
	SkippedItems int `json:"skipped_items" yaml:"skipped_items"`

	// Entries is the number of preference definitions found
	Entries int `json:"entries" yaml:"entries"`

	// Keys is the number of distinct preference keys
	Keys int `json:"keys" yaml:"keys"`

	// Unique counts keys defined exactly once
	Unique int `json:"unique" yaml:"unique"`

	// ConflictFree counts reported keys whose values all agree
	ConflictFree int `json:"conflict_free" yaml:"conflict_free"`

	// Conflicting counts reported keys whose values differ
	Conflicting int `json:"conflicting" yaml:"conflicting"`

	// Suppressed lists keys hidden because a profile name repeats
	Suppressed []string `json:"suppressed" yaml:"suppressed"`

	// Findings are the reported keys sorted by key
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Finding is a key defined by several distinct profiles.
type Finding struct {
	Key            string                  `json:"key" yaml:"key"`
	Classification analyzer.Classification `json:"classification" yaml:"classification"`
	Sources        []FindingSource         `json:"sources" yaml:"sources"`
}

// FindingSource is one profile's definition of a reported key.
type FindingSource struct {
	Profile string      `json:"profile" yaml:"profile"`
	Value   value.Value `json:"value" yaml:"value"`
	Display string      `json:"display" yaml:"display"`
	Digest  string      `json:"digest" yaml:"digest"`
}

// Agree reports whether the finding's values all agree.
func (f Finding) Agree() bool {
	return f.Classification == analyzer.ConflictFree
}

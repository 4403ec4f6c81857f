// Package engine runs a duplicate-key check end to end.
//
// The engine acts as the orchestration layer between the CLI and the
// lower-level packages. A check passes through these stages once:
//   - Privilege gate: root is required when reading from the live system
//   - Acquisition: the profiles Source yields the raw listing
//   - Decoding: the listing becomes Profiles
//   - Analysis: Flatten, Aggregate and Analyze from the analyzer package
//   - Result assembly: findings gain display strings and value digests
package engine

import (
	"github.com/danieljhkim/dupekeys/internal/clock"
	"github.com/danieljhkim/dupekeys/internal/config"
	"github.com/danieljhkim/dupekeys/internal/hash"
	"github.com/danieljhkim/dupekeys/internal/privilege"
	"github.com/danieljhkim/dupekeys/internal/profiles"
)

// Engine orchestrates a check run.
// It is the main API surface called by the CLI.
type Engine struct {
	source    profiles.Source
	privilege privilege.Checker
	hasher    hash.Hasher
	clock     clock.Clock
	settings  config.Settings
}

// New creates a new Engine with the given dependencies.
func New(
	source profiles.Source,
	priv privilege.Checker,
	hasher hash.Hasher,
	clk clock.Clock,
	settings config.Settings,
) *Engine {
	return &Engine{
		source:    source,
		privilege: priv,
		hasher:    hasher,
		clock:     clk,
		settings:  settings,
	}
}

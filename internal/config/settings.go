// Package config holds dupekeys runtime settings.
//
// Every setting has a default that reproduces the stock invocation of the
// macOS profiles tool. A few can be overridden with environment variables,
// which is mostly useful for testing against captured output:
//   - DUPEKEYS_PROFILES_BIN: path to the profiles binary
//   - DUPEKEYS_WIDTH: number of characters shown per value
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultProfilesBin is the host profile-enumeration utility.
	DefaultProfilesBin = "/usr/bin/profiles"

	// DefaultBanner is the informational line the profiles tool prints
	// ahead of its XML output.
	DefaultBanner = "configuration profiles installed"

	// DefaultWidth is the number of characters shown per value.
	DefaultWidth = 60
)

// Settings contains the tunables used by a check run.
type Settings struct {
	// ProfilesBin is the path of the profiles binary.
	ProfilesBin string

	// ProfilesArgs are the arguments that make the binary print every
	// installed profile as an XML property list on stdout.
	ProfilesArgs []string

	// Banner is the substring identifying lines to drop from the output
	// before decoding.
	Banner string

	// Width is the display truncation width for values.
	Width int
}

// DefaultSettings returns the default settings with environment overrides
// applied. An invalid DUPEKEYS_WIDTH is reported as an error together with
// usable defaults.
func DefaultSettings() (*Settings, error) {
	s := &Settings{
		ProfilesBin:  DefaultProfilesBin,
		ProfilesArgs: []string{"-P", "-o", "stdout-xml"},
		Banner:       DefaultBanner,
		Width:        DefaultWidth,
	}

	if bin := strings.TrimSpace(os.Getenv("DUPEKEYS_PROFILES_BIN")); bin != "" {
		s.ProfilesBin = bin
	}

	if raw := strings.TrimSpace(os.Getenv("DUPEKEYS_WIDTH")); raw != "" {
		width, err := ParseWidth(raw)
		if err != nil {
			return s, fmt.Errorf("DUPEKEYS_WIDTH: %w", err)
		}
		s.Width = width
	}

	return s, nil
}

// ParseWidth parses a positive display width.
func ParseWidth(raw string) (int, error) {
	width, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q: %w", raw, err)
	}
	if width <= 0 {
		return 0, fmt.Errorf("invalid width %d: must be positive", width)
	}
	return width, nil
}

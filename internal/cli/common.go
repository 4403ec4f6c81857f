package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/dupekeys/internal/clock"
	"github.com/danieljhkim/dupekeys/internal/config"
	"github.com/danieljhkim/dupekeys/internal/engine"
	"github.com/danieljhkim/dupekeys/internal/fsops"
	"github.com/danieljhkim/dupekeys/internal/hash"
	"github.com/danieljhkim/dupekeys/internal/privilege"
	"github.com/danieljhkim/dupekeys/internal/profiles"
)

// newEngine creates a new engine with real implementations of all dependencies.
// A non-empty input path reads a saved listing instead of running the
// profiles utility. Settings warnings go to errOut.
func newEngine(errOut io.Writer, input string) (*engine.Engine, error) {
	settings, err := config.DefaultSettings()
	if err != nil {
		if settings == nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		PrintWarning(errOut, fmt.Sprintf("%v; using defaults", err))
	}

	var source profiles.Source
	if input != "" {
		source = profiles.NewFileSource(fsops.NewRealFS(), input, settings.Banner)
	} else {
		source = profiles.NewCommandSource(settings.ProfilesBin, settings.ProfilesArgs, settings.Banner)
	}

	return engine.New(
		source,
		privilege.NewEUIDChecker(),
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
		*settings,
	), nil
}

// renderReport writes result to w in the requested format.
func renderReport(w io.Writer, result *engine.CheckResult, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, result)
	case formatYAML:
		return writeYAML(w, result)
	case formatText:
		return writeText(w, result)
	default:
		return errors.New("unsupported format: " + format)
	}
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes a value as YAML.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

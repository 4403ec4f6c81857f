package cli

import (
	"fmt"
	"io"

	"github.com/danieljhkim/dupekeys/internal/engine"
)

const informationHeader = "***** INFORMATION *****"

// writeText renders findings the way administrators read them in a
// terminal: each key in yellow, then one "profile : value" line per
// definition, green when all values agree and red when they differ.
func writeText(w io.Writer, result *engine.CheckResult) error {
	for _, f := range result.Findings {
		if _, err := fmt.Fprintf(w, "\n%s\n", keyColor.Sprint(f.Key)); err != nil {
			return err
		}

		valueColor := differColor
		if f.Agree() {
			valueColor = agreeColor
		}
		for _, s := range f.Sources {
			if _, err := fmt.Fprintf(w, "%s : %s\n", s.Profile, valueColor.Sprint(s.Display)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n\n%s\n%s\n", informationHeader, informationText())
	return err
}

func informationText() string {
	return fmt.Sprintf(`Output indicates that multiple configuration profiles are defining values for the duplicate keys.
This may result in unexpected behavior. For any keys (%s) listed, the corresponding profile names,
along with the values are provided. The values in %s are the same, while values in %s are different
and may need review. Values have been truncated for readability.
NOTE: There are a number of keys that can be defined in multiple profiles with differing values.
These are typically in application-specific profiles, or seen in networking profiles or PPPC profiles.
Red values in output do not necessarily indicate a problem, but rather listed to be reviewed.`,
		keyColor.Sprint("yellow"), agreeColor.Sprint("green"), differColor.Sprint("red"))
}

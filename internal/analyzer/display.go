package analyzer

import (
	"regexp"

	"github.com/rivo/uniseg"

	"github.com/danieljhkim/dupekeys/internal/value"
)

var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}]+`)

// CollapseWhitespace replaces every run of whitespace, newlines included,
// with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// Truncate returns the first width user-perceived characters of s. Strings
// that are already short enough are returned unchanged.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}

	g := uniseg.NewGraphemes(s)
	n := 0
	for g.Next() {
		if n == width {
			start, _ := g.Positions()
			return s[:start]
		}
		n++
	}
	return s
}

// DisplayValue renders v on one line, truncated to width.
func DisplayValue(v value.Value, width int) string {
	return Truncate(CollapseWhitespace(v.String()), width)
}

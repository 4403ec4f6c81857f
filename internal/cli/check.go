package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/dupekeys/internal/engine"
	"github.com/danieljhkim/dupekeys/internal/fsops"
)

var (
	checkInput  string
	checkFormat string
	checkOutput string
	checkWidth  int
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func registerCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&checkInput, "input", "i", "", "Analyze a saved `profiles -P -o stdout-xml` listing instead of the live system")
	cmd.Flags().StringVarP(&checkFormat, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().IntVar(&checkWidth, "width", 0, "Characters shown per value (default 60)")
}

// runCheck runs the duplicate-key check and prints the report.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") && checkWidth <= 0 {
		return fmt.Errorf("invalid width %d: must be positive", checkWidth)
	}

	eng, err := newEngine(cmd.ErrOrStderr(), checkInput)
	if err != nil {
		return err
	}

	result, err := eng.Check(cmd.Context(), &engine.CheckRequest{Width: checkWidth})
	if err != nil {
		return err
	}

	if checkOutput != "" && format == formatText {
		// Reports written to disk carry no escape sequences.
		color.NoColor = true
	}

	var buf bytes.Buffer
	if err := renderReport(&buf, result, format); err != nil {
		return err
	}

	if checkOutput == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := fsops.NewRealFS().AtomicWrite(checkOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Report written to %s", checkOutput))
	return nil
}

// resolveFormat applies --json on top of --format.
func resolveFormat() (string, error) {
	if jsonOutput {
		return formatJSON, nil
	}
	format := strings.ToLower(strings.TrimSpace(checkFormat))
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q: expected text, json or yaml", checkFormat)
	}
}
